package normalize_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streetcommerce/intake/pkg/normalize"
)

func TestCondition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "whole number", raw: "9", want: "9"},
		{name: "fraction keeps numerator", raw: "9/10", want: "9"},
		{name: "rounds to half", raw: "8.3", want: "8.5"},
		{name: "half preserved", raw: "7.5", want: "7.5"},
		{name: "trailing .0 dropped", raw: "10.0", want: "10"},
		{name: "clamped high", raw: "15", want: "10"},
		{name: "zero", raw: "0", want: "0"},
		{name: "embedded in text", raw: "condition 8.5 light wear", want: "8.5"},
		{name: "no number", raw: "like new", want: ""},
		{name: "empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, normalize.Condition(tt.raw))
		})
	}
}

// Every numeric input lands on one of the 21 discrete half-step values,
// and the mapping is monotonic non-decreasing across [0, 10].
func TestConditionDiscreteAndMonotonic(t *testing.T) {
	t.Parallel()

	valid := map[string]struct{}{}
	for v := 0.0; v <= 10.0; v += 0.5 {
		valid[normalize.Condition(fmt.Sprintf("%g", v))] = struct{}{}
	}
	assert.Len(t, valid, 21)

	prev := -1.0
	for v := 0.0; v <= 10.0; v += 0.1 {
		got := normalize.Condition(strconv.FormatFloat(v, 'f', 2, 64))
		require.NotEmpty(t, got)
		n, err := strconv.ParseFloat(got, 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, prev, "condition must not decrease at %v", v)
		prev = n
	}
}
