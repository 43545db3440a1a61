// Package normalize implements the deterministic text and numeric rules
// applied to intake input, both before and after LLM extraction. All
// functions are pure: plain values in, plain values out, no hidden state.
package normalize

import (
	"math"
	"regexp"
	"strconv"
)

var firstNumberRe = regexp.MustCompile(`\d+(\.\d+)?`)

// ParseFirstNumber extracts the first decimal number substring from value.
// Returns false if the value contains no number.
func ParseFirstNumber(value string) (float64, bool) {
	match := firstNumberRe.FindString(value)
	if match == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Clamp restricts v to the inclusive range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// RoundToHalf rounds v to the nearest 0.5 with round-half-up semantics.
func RoundToHalf(v float64) float64 {
	return math.Floor(v*2+0.5) / 2
}
