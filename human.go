package nicenumber

import (
	"fmt"
	"math"
)

// ToHuman converts a numeric value to an abbreviated human-readable string,
// e.g. 4510 becomes "4.51K" at precision 2.
//
// The value may be any Go numeric kind; strings are rejected with
// [ErrNotNumeric] even when they look numeric. The family is validated even
// when a custom suffix list is supplied. Values whose thousands-group index
// exceeds the last configured suffix fail with [ErrTooLarge].
//
// With [WithCurrency] the output is prefixed with the currency symbol, but
// only for the Number family; file sizes are never currency-prefixed.
func ToHuman(n any, opts ...Option) (string, error) {
	c := newConfig(opts)

	v, ok := toFloat(n)
	if !ok {
		return "", fmt.Errorf("%w: got %T (%v)", ErrNotNumeric, n, n)
	}

	if err := checkFamily(c.family); err != nil {
		return "", err
	}

	// Thousands-group index from the decimal order of magnitude.
	order := 0
	if v != 0 {
		order = int(math.Floor(math.Log10(math.Abs(v))))
	}
	idx := order / 3
	if idx < 0 {
		// Fractions below 0.01 would index from the end of the list;
		// render them with no suffix instead.
		idx = 0
	}

	suffixes := suffixList(c.family, c.suffixes, false)
	if max := len(suffixes) - 1; idx > max {
		return "", fmt.Errorf("%w: %v (maximum order 1e%d, suffix %q)",
			ErrTooLarge, n, max*3, suffixes[max])
	}

	scaled := v / math.Pow(1000, float64(idx))

	sym := ""
	if c.currency && c.family == Number {
		sym = c.currencySym
	}
	return fmt.Sprintf("%s%.*f%s", sym, c.prec, scaled, suffixes[idx]), nil
}
