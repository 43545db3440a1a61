package extract

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	domain "github.com/streetcommerce/intake/pkg/types"
)

// allowedKeys is the exact field set a backend answer may carry. Keys
// outside this set fail validation rather than being silently dropped.
var allowedKeys = map[string]bool{
	"brand":                true,
	"itemName":             true,
	"categoryPath":         true,
	"shopifyDescription":   true,
	"size":                 true,
	"condition":            true,
	"cost":                 true,
	"price":                true,
	"location":             true,
	"vendorSource":         true,
	"vendor":               true,
	"consignmentPayoutPct": true,
	"intakeCost":           true,
}

// numericKeys may arrive as JSON numbers; they are coerced to their
// string form.
var numericKeys = map[string]bool{
	"condition":            true,
	"cost":                 true,
	"price":                true,
	"consignmentPayoutPct": true,
	"intakeCost":           true,
}

// ParseResult parses and strictly validates a backend answer. The first
// stage rejects non-JSON content with ErrMalformedResponse; the second
// rejects unknown keys and non-string values with ErrSchemaViolation.
// Missing keys default to "".
func ParseResult(content string) (*domain.ExtractionResult, error) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	var unknown []string
	for k := range raw {
		if !allowedKeys[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf(
			"%w: unknown fields: %s",
			ErrSchemaViolation,
			strings.Join(unknown, ", "),
		)
	}

	fields := make(map[string]string, len(allowedKeys))
	for k, v := range raw {
		s, err := coerceField(k, v)
		if err != nil {
			return nil, err
		}
		fields[k] = s
	}

	return &domain.ExtractionResult{
		Brand:                fields["brand"],
		ItemName:             fields["itemName"],
		CategoryPath:         fields["categoryPath"],
		ShopifyDescription:   fields["shopifyDescription"],
		Size:                 fields["size"],
		Condition:            fields["condition"],
		Cost:                 fields["cost"],
		Price:                fields["price"],
		Location:             fields["location"],
		VendorSource:         fields["vendorSource"],
		Vendor:               fields["vendor"],
		ConsignmentPayoutPct: fields["consignmentPayoutPct"],
		IntakeCost:           fields["intakeCost"],
	}, nil
}

func coerceField(key string, v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case float64:
		if !numericKeys[key] {
			return "", fmt.Errorf(
				"%w: field %q must be a string",
				ErrSchemaViolation,
				key,
			)
		}
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf(
			"%w: field %q has unsupported type %T",
			ErrSchemaViolation,
			key,
			v,
		)
	}
}
