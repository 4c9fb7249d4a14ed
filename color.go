package nicenumber

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Terminal color codes. The names are the public color vocabulary of
// [ToColor].
var colorCodes = map[string]int{
	"black":     30,
	"red":       31,
	"green":     32,
	"yellow":    33,
	"blue":      34,
	"cyan":      36,
	"white":     37,
	"underline": 4,
	"reset":     0,
}

var colorNames = []string{"black", "red", "green", "yellow", "blue", "cyan", "white", "underline", "reset"}

var defaultColors = []string{"red", "green", "yellow", "blue"}

const resetCode = "\x1b[0m"

// Colors returns the recognized color names.
func Colors() []string {
	out := make([]string, len(colorNames))
	copy(out, colorNames)
	return out
}

func colorCode(name string) (string, error) {
	code, ok := colorCodes[name]
	if !ok {
		return "", fmt.Errorf("%w: %q (valid options: %v)", ErrInvalidColor, name, Colors())
	}
	return "\x1b[" + strconv.Itoa(code) + "m", nil
}

// ToColor renders a non-negative integer with each thousands group wrapped
// in a cycling terminal color code, e.g. ToColor(1234) colors "1" red and
// "234" green. The default cycle is red, green, yellow, blue; pass color
// names to override it.
//
// All Go integer kinds are accepted, as is *big.Int for values beyond 64
// bits. Anything else, including negative values, fails with
// [ErrNotInteger].
func ToColor(number any, colors ...string) (string, error) {
	digits, err := digitString(number)
	if err != nil {
		return "", err
	}
	if len(colors) == 0 {
		colors = defaultColors
	}

	var b strings.Builder
	for i, group := range groupThousands(digits) {
		code, err := colorCode(colors[i%len(colors)])
		if err != nil {
			return "", err
		}
		b.WriteString(code)
		b.WriteString(group)
		b.WriteString(resetCode)
	}
	return b.String(), nil
}

// digitString renders an integer value as its decimal digit string.
func digitString(number any) (string, error) {
	var neg bool
	var s string
	switch n := number.(type) {
	case int:
		neg, s = n < 0, strconv.FormatInt(int64(n), 10)
	case int8:
		neg, s = n < 0, strconv.FormatInt(int64(n), 10)
	case int16:
		neg, s = n < 0, strconv.FormatInt(int64(n), 10)
	case int32:
		neg, s = n < 0, strconv.FormatInt(int64(n), 10)
	case int64:
		neg, s = n < 0, strconv.FormatInt(n, 10)
	case uint:
		s = strconv.FormatUint(uint64(n), 10)
	case uint8:
		s = strconv.FormatUint(uint64(n), 10)
	case uint16:
		s = strconv.FormatUint(uint64(n), 10)
	case uint32:
		s = strconv.FormatUint(uint64(n), 10)
	case uint64:
		s = strconv.FormatUint(n, 10)
	case *big.Int:
		if n == nil {
			return "", fmt.Errorf("%w: got nil *big.Int", ErrNotInteger)
		}
		neg, s = n.Sign() < 0, n.String()
	default:
		return "", fmt.Errorf("%w: got %T (%v)", ErrNotInteger, number, number)
	}
	if neg {
		return "", fmt.Errorf("%w: must be non-negative, got %v", ErrNotInteger, number)
	}
	return s, nil
}

// groupThousands partitions a digit string into groups of three counted
// from the right; the leftmost group carries the remainder.
func groupThousands(digits string) []string {
	first := len(digits) % 3
	if first == 0 {
		first = 3
	}
	if first > len(digits) {
		first = len(digits)
	}
	groups := []string{digits[:first]}
	for i := first; i < len(digits); i += 3 {
		groups = append(groups, digits[i:i+3])
	}
	return groups
}
