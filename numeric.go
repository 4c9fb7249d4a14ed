package nicenumber

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// Longest leading run of non-digit characters: currency symbols,
	// whitespace, punctuation.
	leadingNonDigits = regexp.MustCompile(`^\D+`)
	// Trailing alphabetic run, the candidate suffix.
	trailingAlpha = regexp.MustCompile(`[a-zA-Z]*$`)
	// First numeric literal: digits, optionally a decimal point and more
	// digits.
	numericLiteral = regexp.MustCompile(`\d+\.?\d*`)
)

// ToNumeric converts an abbreviated human-readable string back to a number,
// e.g. "1.2K" becomes 1200.
//
// A value that is already numeric is returned as float64 without parsing
// (the family is not consulted). Leading non-digit characters are stripped,
// the trailing alphabetic run is matched case-insensitively against the
// resolved suffix list, and the numeric literal is scaled by the matching
// power of 1000. An unrecognized trailing suffix fails with
// [ErrInvalidSuffix] rather than being silently truncated.
func ToNumeric(value any, opts ...Option) (float64, error) {
	c := newConfig(opts)

	if v, ok := toFloat(value); ok {
		return v, nil
	}

	s, ok := value.(string)
	if !ok {
		return 0, fmt.Errorf("%w: got %T (%v)", ErrNotString, value, value)
	}

	stripped := leadingNonDigits.ReplaceAllString(s, "")

	if err := checkFamily(c.family); err != nil {
		return 0, err
	}

	suffixes := suffixList(c.family, c.suffixes, true)

	suff := strings.ToLower(trailingAlpha.FindString(stripped))
	power := slices.Index(suffixes, suff)
	if power < 0 {
		return 0, fmt.Errorf("%w: %q (valid suffixes: %v)", ErrInvalidSuffix, suff, suffixes)
	}

	lit := strings.TrimSuffix(numericLiteral.FindString(stripped), ".")
	if lit == "" {
		return 0, fmt.Errorf("%w: no numeric literal in %q", ErrNotNumeric, s)
	}

	// Exact decimal arithmetic keeps e.g. "69.420B" at 69420000000 rather
	// than picking up binary float artifacts from the multiply.
	d, err := decimal.NewFromString(lit)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, lit)
	}
	return d.Mul(decimal.New(1, int32(3*power))).InexactFloat64(), nil
}
