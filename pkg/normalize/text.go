package normalize

import (
	"regexp"
	"strings"
)

// DedupeAdjacentWords drops whitespace-separated tokens that
// case-insensitively repeat the immediately preceding kept token.
// A trailing duplicate pair left at the boundary of the main pass is
// also removed. Returns "" for empty input.
func DedupeAdjacentWords(value string) string {
	if value == "" {
		return ""
	}
	tokens := strings.Fields(value)
	deduped := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if len(deduped) > 0 && strings.EqualFold(deduped[len(deduped)-1], token) {
			continue
		}
		deduped = append(deduped, token)
	}
	if len(deduped) > 1 &&
		strings.EqualFold(deduped[len(deduped)-1], deduped[len(deduped)-2]) {
		deduped = deduped[:len(deduped)-1]
	}
	return strings.Join(deduped, " ")
}

// EndsWithWord reports whether value ends with word on a word boundary,
// case-insensitively.
func EndsWithWord(value, word string) bool {
	if value == "" || word == "" {
		return false
	}
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `$`)
	return re.MatchString(strings.TrimSpace(value))
}

// TitleCase upper-cases the first letter of each whitespace-separated
// word and lower-cases the rest.
func TitleCase(value string) string {
	words := strings.Fields(value)
	for i, word := range words {
		runes := []rune(word)
		words[i] = strings.ToUpper(string(runes[0])) + strings.ToLower(string(runes[1:]))
	}
	return strings.Join(words, " ")
}
