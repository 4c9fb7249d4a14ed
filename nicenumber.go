package nicenumber

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNotNumeric       = errors.New("value is not numeric")
	ErrInvalidFamily    = errors.New("invalid suffix family")
	ErrTooLarge         = errors.New("number too large for conversion")
	ErrNotString        = errors.New("value is not a string or number")
	ErrInvalidSuffix    = errors.New("invalid string suffix")
	ErrNotATable        = errors.New("not a Frame")
	ErrBadColumnSpec    = errors.New("invalid column specification")
	ErrUnknownColumn    = errors.New("unknown column")
	ErrInvalidTransform = errors.New("invalid transform")
	ErrNotInteger       = errors.New("value is not an integer")
	ErrInvalidColor     = errors.New("invalid color name")
)

// Family identifies a set of magnitude suffixes, one per power of 1000.
type Family string

const (
	Number   Family = "number"   // K, M, B, T, Q
	FileSize Family = "filesize" // KB, MB, GB, TB, PB
)

var familySuffixes = map[Family][]string{
	Number:   {"K", "M", "B", "T", "Q"},
	FileSize: {"KB", "MB", "GB", "TB", "PB"},
}

// String returns the family name.
func (f Family) String() string { return string(f) }

// Suffixes returns the family's suffix list in increasing magnitude order.
// The returned slice is a copy.
func (f Family) Suffixes() []string {
	suffs := familySuffixes[f]
	out := make([]string, len(suffs))
	copy(out, suffs)
	return out
}

// Families returns all supported suffix families.
func Families() []Family {
	return []Family{Number, FileSize}
}

// ParseFamily parses a family name.
func ParseFamily(s string) (Family, error) {
	f := Family(s)
	if _, ok := familySuffixes[f]; !ok {
		return "", fmt.Errorf("%w: %q (valid options: %v)", ErrInvalidFamily, s, Families())
	}
	return f, nil
}

func checkFamily(f Family) error {
	if _, ok := familySuffixes[f]; !ok {
		return fmt.Errorf("%w: %q (valid options: %v)", ErrInvalidFamily, f, Families())
	}
	return nil
}

// suffixList returns the resolved suffix list with the empty suffix at
// index 0, so the index doubles as the power-of-1000 group. A custom list
// takes precedence over the family's list.
func suffixList(f Family, custom []string, lower bool) []string {
	suffs := custom
	if len(suffs) == 0 {
		suffs = familySuffixes[f]
	}
	out := make([]string, 0, len(suffs)+1)
	out = append(out, "")
	for _, s := range suffs {
		if lower {
			s = strings.ToLower(s)
		}
		out = append(out, s)
	}
	return out
}

// ErrorPolicy selects how conversion failures are handled when applying a
// transform across a Frame.
type ErrorPolicy string

const (
	// Raise propagates the first conversion failure. Default.
	Raise ErrorPolicy = "raise"
	// Coerce replaces a failed cell with NA instead of failing.
	Coerce ErrorPolicy = "coerce"
)

// naValue is the missing-value sentinel type. NA is its only value.
type naValue struct{}

// NA is the missing-value sentinel produced for failed conversions under
// the Coerce policy.
var NA = naValue{}

func (naValue) String() string { return "<NA>" }

// MarshalJSON encodes NA as JSON null.
func (naValue) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// MarshalYAML encodes NA as YAML null.
func (naValue) MarshalYAML() (any, error) { return nil, nil }

// IsNA reports whether v is the NA sentinel.
func IsNA(v any) bool {
	_, ok := v.(naValue)
	return ok
}

// OrNA maps a failed conversion to NA. It is the coerce-mode adapter for
// scalar calls:
//
//	v := nicenumber.OrNA(nicenumber.ToHuman(input)) // string or NA
func OrNA[T any](v T, err error) any {
	if err != nil {
		return NA
	}
	return v
}

// Option configures a conversion.
type Option func(*config)

type config struct {
	prec        int
	family      Family
	suffixes    []string
	currency    bool
	currencySym string
	colors      []string
	errors      ErrorPolicy
}

func newConfig(opts []Option) config {
	c := config{
		family:      Number,
		currencySym: "$",
		errors:      Raise,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithPrec sets the decimal precision of formatted output. Negative values
// are treated as zero.
func WithPrec(prec int) Option {
	return func(c *config) {
		if prec < 0 {
			prec = 0
		}
		c.prec = prec
	}
}

// WithFamily selects the suffix family. Default is Number.
func WithFamily(f Family) Option {
	return func(c *config) { c.family = f }
}

// WithSuffixes supplies a custom suffix list, overriding the family's list.
// The family is still validated.
func WithSuffixes(suffixes []string) Option {
	return func(c *config) { c.suffixes = suffixes }
}

// WithCurrency prefixes formatted output with the currency symbol.
// Ignored for families other than Number.
func WithCurrency() Option {
	return func(c *config) { c.currency = true }
}

// WithCurrencySymbol sets the currency symbol. Default is "$".
func WithCurrencySymbol(sym string) Option {
	return func(c *config) { c.currencySym = sym }
}

// WithColors sets the cycling color list used by the Color transform.
func WithColors(colors ...string) Option {
	return func(c *config) { c.colors = colors }
}

// WithErrors sets the error policy for per-cell conversions in a Frame
// transform. Structural failures always propagate.
func WithErrors(policy ErrorPolicy) Option {
	return func(c *config) { c.errors = policy }
}

// toFloat converts any Go numeric kind to float64. Strings never qualify,
// even when they look numeric.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
