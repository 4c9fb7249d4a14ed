// Package nicenumber converts between numeric values and abbreviated
// human-readable strings (4510 ↔ "4.51K"), colors the thousands groups of
// large integers for terminal output, and applies these conversions across
// the columns of a small in-memory table.
//
// # Conversions
//
// [ToHuman] formats a number with a magnitude suffix, [ToNumeric] parses
// one back:
//
//	s, _ := nicenumber.ToHuman(4510, nicenumber.WithPrec(2)) // "4.51K"
//	n, _ := nicenumber.ToNumeric("1.2K")                     // 1200.0
//
// Suffixes come in families: [Number] (K, M, B, T, Q) and [FileSize]
// (KB, MB, GB, TB, PB), each stepping by powers of 1000. [WithSuffixes]
// substitutes a caller-supplied list. [WithCurrency] prefixes the output
// with a currency symbol, for the Number family only.
//
// [ToColor] wraps each thousands group of a non-negative integer in a
// cycling terminal color code:
//
//	s, _ := nicenumber.ToColor(1234) // "1" red, "234" green
//
// # Frames
//
// A [Frame] is an ordered collection of named columns. [Apply] (or the
// [Frame.Transform] method) replaces every cell of the selected columns
// with a converted value and returns a new Frame:
//
//	out, _ := nicenumber.Apply(f, nicenumber.Human, []string{"A"}, nicenumber.WithPrec(1))
//
// Frames export to CSV, TSV, JSON, JSONL, YAML, Markdown, HTML, and
// bordered terminal tables.
//
// # Errors
//
// Failures wrap sentinel errors ([ErrNotNumeric], [ErrInvalidFamily],
// [ErrTooLarge], [ErrInvalidSuffix], ...) and name the offending value
// together with the valid options. Conversion results can be coerced to
// the [NA] sentinel instead of propagating: wrap scalar calls with [OrNA],
// or pass WithErrors(Coerce) to a Frame transform to turn failed cells
// into NA. Structural table errors and colorizer failures always
// propagate.
package nicenumber
