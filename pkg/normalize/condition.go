package normalize

import (
	"strconv"
	"strings"
)

// Condition normalizes a free-text condition score into one of the 21
// discrete values {"0", "0.5", "1", ..., "10"}. The first number found
// is clamped to [0, 10] and rounded to the nearest 0.5; a trailing ".0"
// is dropped. Input without a number yields "".
func Condition(raw string) string {
	n, ok := ParseFirstNumber(raw)
	if !ok {
		return ""
	}
	return formatCondition(RoundToHalf(Clamp(n, 0, 10)))
}

func formatCondition(v float64) string {
	formatted := strconv.FormatFloat(v, 'f', 1, 64)
	return strings.TrimSuffix(formatted, ".0")
}
