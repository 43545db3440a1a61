package normalize

import (
	"strings"
)

var categorySeparators = []string{"›", ">"}

// SplitCategoryPath splits a hierarchical category path on ">" (or the
// "›" glyph some clients paste in) into its top-level category and leaf
// subcategory. A path without separators is both.
func SplitCategoryPath(path string) (category, leaf string) {
	normalized := path
	for _, sep := range categorySeparators {
		normalized = strings.ReplaceAll(normalized, sep, ">")
	}

	var parts []string
	for _, part := range strings.Split(normalized, ">") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	if len(parts) == 0 {
		trimmed := strings.TrimSpace(path)
		return trimmed, trimmed
	}
	return parts[0], parts[len(parts)-1]
}

// ComposeTitle assembles the display title "<brand> <item name>
// <subcategory>", deduplicating adjacent words. The subcategory is
// appended only when the item name doesn't already end with it.
func ComposeTitle(brand, itemName, subCategory string) string {
	parts := []string{strings.TrimSpace(brand), strings.TrimSpace(itemName)}
	if sub := strings.TrimSpace(subCategory); sub != "" && !EndsWithWord(itemName, sub) {
		parts = append(parts, sub)
	}

	joined := strings.Join(nonEmpty(parts), " ")
	return DedupeAdjacentWords(joined)
}

// BuildTags produces the deterministic tag set for an intake record.
// Tags whose value segment is empty are dropped; needs_photos is always
// present.
func BuildTags(size, condition, location string) []string {
	tags := make([]string, 0, 4)
	for _, t := range []struct{ prefix, value string }{
		{"size_", strings.TrimSpace(size)},
		{"condition_", strings.TrimSpace(condition)},
		{"loc_", strings.TrimSpace(location)},
	} {
		if t.value != "" {
			tags = append(tags, t.prefix+t.value)
		}
	}
	return append(tags, "needs_photos")
}

func nonEmpty(values []string) []string {
	kept := values[:0]
	for _, v := range values {
		if v != "" {
			kept = append(kept, v)
		}
	}
	return kept
}
