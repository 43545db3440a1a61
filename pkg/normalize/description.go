package normalize

import (
	"regexp"
	"strings"
)

// hypeWords are subjective adjectives stripped from store descriptions.
var hypeWords = []string{
	"stylish", "great", "amazing", "beautiful", "stunning", "premium",
	"luxury", "perfect", "incredible", "iconic", "must-have",
}

var (
	sizePhraseRe    = regexp.MustCompile(`(?i)\b(?:mens|men's|womens|women's)?\s*size\s*\d+(\.\d+)?\b`)
	conditionRefRe  = regexp.MustCompile(`(?i)\bcondition\s*:?[^.\n]*`)
	boughtForRe     = regexp.MustCompile(`(?i)\bbought for[^.\n]*`)
	sellForRe       = regexp.MustCompile(`(?i)\bsell for[^.\n]*`)
	dupontRefRe     = regexp.MustCompile(`(?i)\bdupont(?: store)?\b`)
	charlotteRefRe  = regexp.MustCompile(`(?i)\bcharlotte(?: store)?\b`)
	spaceCommaRe    = regexp.MustCompile(`\s+,`)
	commaDotRe      = regexp.MustCompile(`,\s*\.`)
	leadingJunkRe   = regexp.MustCompile(`^[\s,.-]+`)
	trailingJunkRe  = regexp.MustCompile(`[\s,.-]+$`)
	trailingWSRe    = regexp.MustCompile(`[ \t]+\n`)
	blankRunRe      = regexp.MustCompile(`\n{3,}`)
	multiSpaceRe    = regexp.MustCompile(` {2,}`)
	multiSpaceTabRe = regexp.MustCompile(`[ \t]{2,}`)
)

// hypeWordRe matches any hype adjective as a whole word.
var hypeWordRe = func() *regexp.Regexp {
	escaped := make([]string, len(hypeWords))
	for i, w := range hypeWords {
		escaped[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(escaped, "|") + `)\b`)
}()

// SanitizeDescription strips structured-field echoes out of an
// extracted free-text description: literal brand and item-name
// occurrences, size/condition/bought-for/sell-for phrases, the two
// store-name references, and the punctuation debris left behind.
func SanitizeDescription(value, brand, itemName string) string {
	if value == "" {
		return ""
	}
	cleaned := value
	if brand != "" {
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(brand))
		cleaned = re.ReplaceAllString(cleaned, "")
	}
	if itemName != "" {
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(itemName))
		cleaned = re.ReplaceAllString(cleaned, "")
	}

	cleaned = sizePhraseRe.ReplaceAllString(cleaned, "")
	cleaned = conditionRefRe.ReplaceAllString(cleaned, "")
	cleaned = boughtForRe.ReplaceAllString(cleaned, "")
	cleaned = sellForRe.ReplaceAllString(cleaned, "")
	cleaned = dupontRefRe.ReplaceAllString(cleaned, "")
	cleaned = charlotteRefRe.ReplaceAllString(cleaned, "")

	cleaned = spaceCommaRe.ReplaceAllString(cleaned, ",")
	cleaned = commaDotRe.ReplaceAllString(cleaned, ".")
	cleaned = leadingJunkRe.ReplaceAllString(cleaned, "")
	cleaned = trailingJunkRe.ReplaceAllString(cleaned, "")
	cleaned = trailingWSRe.ReplaceAllString(cleaned, "\n")
	cleaned = blankRunRe.ReplaceAllString(cleaned, "\n\n")
	cleaned = multiSpaceRe.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// StripHypeWords removes the subjective-adjective denylist as whole
// words and collapses the doubled spaces left behind.
func StripHypeWords(value string) string {
	if value == "" {
		return ""
	}
	stripped := hypeWordRe.ReplaceAllString(value, "")
	return strings.TrimSpace(multiSpaceTabRe.ReplaceAllString(stripped, " "))
}

// NormalizeLines converts CRLF line endings, trims each line, and drops
// blank lines.
func NormalizeLines(value string) string {
	if value == "" {
		return ""
	}
	lines := strings.Split(strings.ReplaceAll(value, "\r\n", "\n"), "\n")
	kept := lines[:0]
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		kept = append(kept, trimmed)
	}
	return strings.Join(kept, "\n")
}

// CleanDescription runs the full description pipeline: sanitize
// structured-field echoes, strip hype adjectives, normalize lines.
func CleanDescription(value, brand, itemName string) string {
	return NormalizeLines(StripHypeWords(SanitizeDescription(value, brand, itemName)))
}
