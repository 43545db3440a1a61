package normalize

import (
	"strings"

	domain "github.com/streetcommerce/intake/pkg/types"
)

// locationKeywords maps a raw-input keyword to its canonical store label.
var locationKeywords = []struct {
	keyword string
	label   domain.StoreLocation
}{
	{"charlotte", domain.LocationCharlotte},
	{"dupont", domain.LocationDuPont},
}

// InferLocation finds a store keyword in the raw input and returns its
// canonical label. When both store keywords appear, the one at the
// earlier string index wins. Returns "" when neither is present.
func InferLocation(rawInput string) string {
	lowered := strings.ToLower(rawInput)

	best := ""
	bestIdx := -1
	for _, loc := range locationKeywords {
		idx := strings.Index(lowered, loc.keyword)
		if idx < 0 {
			continue
		}
		if bestIdx < 0 || idx < bestIdx {
			best, bestIdx = string(loc.label), idx
		}
	}
	return best
}
