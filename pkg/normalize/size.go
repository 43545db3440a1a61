package normalize

import (
	"regexp"
	"strings"
)

// Size label patterns: "<LABEL> <n>" and "<n> <LABEL>" where LABEL is
// US, U.S., IT, or EU in any case. Dots are stripped and the label
// upper-cased on extraction.
var (
	sizeLabelFirstRe = regexp.MustCompile(`(?i)\b(U\.?S\.?|IT|EU)\s*(\d+(?:\.\d+)?)\b`)
	sizeLabelLastRe  = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(U\.?S\.?|IT|EU)\b`)
	sizeLineRe       = regexp.MustCompile(`(?i)^size\b.*\d`)
)

// SizeStandard holds the regional sizes detected for one item: at most
// one US size and one alternate (IT preferred over EU) size.
type SizeStandard struct {
	US       string
	AltLabel string
	AltValue string
}

// HasUS reports whether a US size was detected.
func (s SizeStandard) HasUS() bool { return s.US != "" }

// HasAlt reports whether an alternate regional size was detected.
func (s SizeStandard) HasAlt() bool { return s.AltLabel != "" }

// USToken returns the canonical "US <n>" token, or "" without a US size.
func (s SizeStandard) USToken() string {
	if s.US == "" {
		return ""
	}
	return "US " + s.US
}

// DescriptionLine renders the combined size line appended to the item
// description when both a US and an alternate size exist.
func (s SizeStandard) DescriptionLine() string {
	if !s.HasUS() || !s.HasAlt() {
		return ""
	}
	return "Size: " + s.AltLabel + " " + s.AltValue + " / US " + s.US
}

// DetectSizeStandard scans the extracted size field and then the raw
// input for labeled sizes. The extracted field is scanned first and
// wins per label; the raw input only fills labels still unset. When
// both IT and EU appear, IT is kept as the alternate.
func DetectSizeStandard(extractedSize, rawInput string) SizeStandard {
	found := map[string]string{}
	collectSizes(extractedSize, found)
	collectSizes(rawInput, found)

	std := SizeStandard{US: found["US"]}
	switch {
	case found["IT"] != "":
		std.AltLabel, std.AltValue = "IT", found["IT"]
	case found["EU"] != "":
		std.AltLabel, std.AltValue = "EU", found["EU"]
	}
	return std
}

func collectSizes(text string, found map[string]string) {
	if text == "" {
		return
	}
	for _, m := range sizeLabelFirstRe.FindAllStringSubmatch(text, -1) {
		setSize(found, m[1], m[2])
	}
	for _, m := range sizeLabelLastRe.FindAllStringSubmatch(text, -1) {
		setSize(found, m[2], m[1])
	}
}

// setSize records a label/value pair, first writer wins.
func setSize(found map[string]string, label, value string) {
	key := strings.ToUpper(strings.ReplaceAll(label, ".", ""))
	if found[key] == "" {
		found[key] = value
	}
}

// SuffixItemNameWithSize appends the canonical US size token to the
// item name unless it already ends with it.
func SuffixItemNameWithSize(itemName, usToken string) string {
	if usToken == "" {
		return itemName
	}
	if EndsWithWord(itemName, usToken) {
		return itemName
	}
	return DedupeAdjacentWords(strings.TrimSpace(itemName + " " + usToken))
}

// StripSizeLines removes description lines that restate a size: lines
// beginning with "size" followed by a number, or containing a labeled
// size in either order.
func StripSizeLines(description string) string {
	if description == "" {
		return ""
	}
	lines := strings.Split(strings.ReplaceAll(description, "\r\n", "\n"), "\n")
	kept := lines[:0]
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if sizeLineRe.MatchString(trimmed) ||
			sizeLabelFirstRe.MatchString(trimmed) ||
			sizeLabelLastRe.MatchString(trimmed) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
