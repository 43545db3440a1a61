package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

// consignmentKeywords are the raw-input phrases that mark an item as
// consigned rather than store-purchased.
var consignmentKeywords = []string{
	"consignment",
	"consigning",
	"consigned",
	"consignee",
	"consign",
	"selling it for",
}

var (
	payoutSplitRe  = regexp.MustCompile(`\b(\d{1,3})\s*/\s*(\d{1,3})\b`)
	percentTokenRe = regexp.MustCompile(`\b(\d{1,3})\s*%`)
)

// keywordPercentWindow is the maximum string-index distance between a
// consignment keyword and a percent token for the two to pair up.
const keywordPercentWindow = 60

// ConsignmentSignal is the outcome of raw-text consignment detection.
type ConsignmentSignal struct {
	IsConsignment bool
	PayoutPct     float64
}

// DetectConsignment scans raw input for consignment markers. Payout
// resolution order: the A of an A/B payout split, then a percent token
// within keywordPercentWindow characters of a keyword, then defaultPct.
// An A/B pair only counts as a payout split when the halves sum to 100,
// so condition scores like "9/10" don't read as splits. The resolved
// percent is clamped to [0, 100].
func DetectConsignment(rawInput string, defaultPct float64) ConsignmentSignal {
	if a, ok := findPayoutSplit(rawInput); ok {
		return ConsignmentSignal{IsConsignment: true, PayoutPct: Clamp(a, 0, 100)}
	}

	keywordIdx := findKeywordIndices(rawInput)
	if len(keywordIdx) == 0 {
		return ConsignmentSignal{}
	}

	if pct, ok := findPercentNearKeyword(rawInput, keywordIdx); ok {
		return ConsignmentSignal{IsConsignment: true, PayoutPct: Clamp(pct, 0, 100)}
	}
	return ConsignmentSignal{IsConsignment: true, PayoutPct: Clamp(defaultPct, 0, 100)}
}

func findPayoutSplit(rawInput string) (float64, bool) {
	for _, m := range payoutSplitRe.FindAllStringSubmatch(rawInput, -1) {
		a, errA := strconv.Atoi(m[1])
		b, errB := strconv.Atoi(m[2])
		if errA != nil || errB != nil {
			continue
		}
		if a+b == 100 {
			return float64(a), true
		}
	}
	return 0, false
}

// findKeywordIndices returns the string index of every consignment
// keyword occurrence, in string order.
func findKeywordIndices(rawInput string) []int {
	lowered := strings.ToLower(rawInput)
	var indices []int
	for _, kw := range consignmentKeywords {
		offset := 0
		for {
			idx := strings.Index(lowered[offset:], kw)
			if idx < 0 {
				break
			}
			indices = append(indices, offset+idx)
			offset += idx + len(kw)
		}
	}
	return indices
}

func findPercentNearKeyword(rawInput string, keywordIdx []int) (float64, bool) {
	matches := percentTokenRe.FindAllStringSubmatchIndex(rawInput, -1)
	for _, kidx := range keywordIdx {
		for _, m := range matches {
			dist := m[0] - kidx
			if dist < 0 {
				dist = -dist
			}
			if dist > keywordPercentWindow {
				continue
			}
			pct, err := strconv.ParseFloat(rawInput[m[2]:m[3]], 64)
			if err != nil {
				continue
			}
			return pct, true
		}
	}
	return 0, false
}
