package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/streetcommerce/intake/pkg/normalize"
)

func TestSplitCategoryPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		wantCat  string
		wantLeaf string
	}{
		{name: "three levels", path: "Mens > Shoes > Sneakers", wantCat: "Mens", wantLeaf: "Sneakers"},
		{name: "glyph separator", path: "Mens › Shoes", wantCat: "Mens", wantLeaf: "Shoes"},
		{name: "single segment", path: "Accessories", wantCat: "Accessories", wantLeaf: "Accessories"},
		{name: "sloppy spacing", path: " Mens>Shoes >  Sneakers ", wantCat: "Mens", wantLeaf: "Sneakers"},
		{name: "empty", path: "", wantCat: "", wantLeaf: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cat, leaf := normalize.SplitCategoryPath(tt.path)
			assert.Equal(t, tt.wantCat, cat)
			assert.Equal(t, tt.wantLeaf, leaf)
		})
	}
}

func TestComposeTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		brand       string
		itemName    string
		subCategory string
		want        string
	}{
		{
			name:        "appends subcategory",
			brand:       "Rick Owens",
			itemName:    "Pony Hair Ramone",
			subCategory: "Sneakers",
			want:        "Rick Owens Pony Hair Ramone Sneakers",
		},
		{
			name:        "item name already ends with subcategory",
			brand:       "Rick Owens",
			itemName:    "Ramone Sneakers",
			subCategory: "Sneakers",
			want:        "Rick Owens Ramone Sneakers",
		},
		{
			name:        "adjacent duplicates deduped",
			brand:       "Nike",
			itemName:    "Nike Dunk",
			subCategory: "Dunk",
			want:        "Nike Dunk",
		},
		{
			name:     "no subcategory",
			brand:    "Nike",
			itemName: "Dunk Low",
			want:     "Nike Dunk Low",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, normalize.ComposeTitle(tt.brand, tt.itemName, tt.subCategory))
		})
	}
}

func TestBuildTags(t *testing.T) {
	t.Parallel()

	tags := normalize.BuildTags("US 10.5", "9", "DuPont Store")
	assert.Equal(t, []string{"size_US 10.5", "condition_9", "loc_DuPont Store", "needs_photos"}, tags)

	tags = normalize.BuildTags("", "9", "")
	assert.Equal(t, []string{"condition_9", "needs_photos"}, tags)
}
