package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/streetcommerce/intake/pkg/normalize"
)

func TestParseMoney(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "currency and thousands separator", value: "$1,234.56", want: "1234.56"},
		{name: "plain integer", value: "300", want: "300"},
		{name: "empty", value: "", want: ""},
		{name: "no digits", value: "$,", want: ""},
		{name: "extra dots concatenated", value: "1.234.56", want: "1.23456"},
		// Leading zeros strip only while the next character is a digit.
		// "000.5" keeps the final zero before the decimal point.
		{name: "leading zeros before decimal", value: "000.5", want: "0.5"},
		{name: "leading zeros before digits", value: "007", want: "7"},
		{name: "lone zero preserved", value: "0", want: "0"},
		{name: "plain decimal unchanged", value: "0.5", want: "0.5"},
		{name: "bare dot fraction", value: ".5", want: ".5"},
		{name: "whitespace and symbols", value: " 12 USD ", want: "12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, normalize.ParseMoney(tt.value))
		})
	}
}
