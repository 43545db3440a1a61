package normalize

import (
	"regexp"
	"strings"
)

var nonMoneyRe = regexp.MustCompile(`[^0-9.]`)

// ParseMoney cleans a currency-ish string into a bare decimal string.
// Currency symbols and separators are dropped, any dots past the first
// are treated as thousands noise and concatenated into the fraction,
// and leading zeros are stripped only while the next character is a
// digit: "000.5" becomes "0.5", "007" becomes "7", a lone "0" and a
// bare ".5" are preserved as-is. Empty input yields "".
func ParseMoney(value string) string {
	if value == "" {
		return ""
	}
	cleaned := nonMoneyRe.ReplaceAllString(value, "")
	if cleaned == "" {
		return ""
	}

	parts := strings.Split(cleaned, ".")
	normalized := parts[0]
	if len(parts) > 1 {
		normalized += "." + strings.Join(parts[1:], "")
	}

	for len(normalized) >= 2 && normalized[0] == '0' && isDigit(normalized[1]) {
		normalized = normalized[1:]
	}
	return normalized
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
