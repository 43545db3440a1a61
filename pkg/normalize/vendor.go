package normalize

import (
	"regexp"
	"strings"
)

var (
	vendorLabelRe      = regexp.MustCompile(`(?i)\bvendor\s*[:=-]?\s*([^,.\n]+)`)
	vendorConsigningRe = regexp.MustCompile(`(?i)([^,.\n]+?)\s+is\s+consigning\b`)
	shorthandVendorRe  = regexp.MustCompile(`(?i)^consignment\s*-\s*(.+)$`)
	isConsigningTailRe = regexp.MustCompile(`(?i)\s+is\s+consigning\b.*$`)
)

// ExtractVendor pulls a vendor name out of raw input. Two patterns are
// tried in order: an explicit "vendor: <name>" label (captured up to a
// clause boundary, with a chained " is consigning" clause cut off), then
// "<name> is consigning". Returns "" when neither matches.
func ExtractVendor(rawInput string) string {
	if m := vendorLabelRe.FindStringSubmatch(rawInput); m != nil {
		name := isConsigningTailRe.ReplaceAllString(m[1], "")
		return strings.TrimSpace(name)
	}
	if m := vendorConsigningRe.FindStringSubmatch(rawInput); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// ExtractVendorShorthand recognizes the "consignment - <name>" shorthand
// staff type into the vendor field. The second return reports whether
// the shorthand was present; the name is what should be resolved against
// the vendor directory.
func ExtractVendorShorthand(value string) (string, bool) {
	m := shorthandVendorRe.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}
