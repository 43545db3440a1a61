package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/streetcommerce/intake/pkg/normalize"
)

func TestExtractVendor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "vendor colon", raw: "Nike Dunk, vendor: Maria Lopez, size 10", want: "Maria Lopez"},
		{name: "vendor equals", raw: "vendor = Maria", want: "Maria"},
		{name: "vendor dash", raw: "vendor - Second Street", want: "Second Street"},
		{name: "vendor bare", raw: "vendor Maria Lopez", want: "Maria Lopez"},
		{name: "label stops at clause boundary", raw: "vendor: Maria Lopez. bought for 40", want: "Maria Lopez"},
		{
			name: "chained consigning clause cut off",
			raw:  "vendor Maria is consigning this one",
			want: "Maria",
		},
		{name: "is consigning pattern", raw: "Nike Dunk, Maria Lopez is consigning", want: "Maria Lopez"},
		{name: "label wins over consigning", raw: "vendor: Ana, Maria is consigning", want: "Ana"},
		{name: "no vendor", raw: "Nike Dunk size 10", want: ""},
		{name: "empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, normalize.ExtractVendor(tt.raw))
		})
	}
}

func TestExtractVendorShorthand(t *testing.T) {
	t.Parallel()

	name, ok := normalize.ExtractVendorShorthand("consignment - Maria Lopez")
	assert.True(t, ok)
	assert.Equal(t, "Maria Lopez", name)

	name, ok = normalize.ExtractVendorShorthand("Consignment-ML")
	assert.True(t, ok)
	assert.Equal(t, "ML", name)

	_, ok = normalize.ExtractVendorShorthand("Maria Lopez")
	assert.False(t, ok)
}
