package intake

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/streetcommerce/intake/pkg/normalize"
	domain "github.com/streetcommerce/intake/pkg/types"
)

// resolution carries the working state while field rules run. Rules run
// in declaration order; later rules may read what earlier rules wrote.
type resolution struct {
	ctx       context.Context
	raw       string
	oracle    *domain.ExtractionResult
	cfg       Config
	directory VendorDirectory
	logger    *slog.Logger

	size    normalize.SizeStandard
	consign normalize.ConsignmentSignal
	out     domain.IntakeFields
}

// fieldRule resolves one slice of the normalized record. Keeping the
// rules in an ordered table makes the raw-text-over-backend precedence
// auditable in one place.
type fieldRule struct {
	field   string
	resolve func(r *resolution)
}

var fieldRules = []fieldRule{
	{"brand", resolveBrand},
	{"category", resolveCategory},
	{"condition", resolveCondition},
	{"money", resolveMoney},
	{"size", resolveSize},
	{"description", resolveDescription},
	{"location", resolveLocation},
	{"consignment", resolveConsignment},
	{"cost", resolveCost},
	{"vendor", resolveVendor},
}

func resolveBrand(r *resolution) {
	r.out.Brand = strings.TrimSpace(r.oracle.Brand)
}

func resolveCategory(r *resolution) {
	r.out.CategoryPath = strings.TrimSpace(r.oracle.CategoryPath)
}

func resolveCondition(r *resolution) {
	r.out.Condition = normalize.Condition(r.oracle.Condition)
}

func resolveMoney(r *resolution) {
	r.out.Cost = normalize.ParseMoney(r.oracle.Cost)
	r.out.Price = normalize.ParseMoney(r.oracle.Price)
}

// resolveSize standardizes the size label and suffixes the item name
// with the US token. Raw-input labels only fill slots the backend's
// size field left empty.
func resolveSize(r *resolution) {
	r.size = normalize.DetectSizeStandard(r.oracle.Size, r.raw)

	itemName := strings.TrimSpace(r.oracle.ItemName)
	if r.size.HasUS() {
		r.out.Size = r.size.USToken()
		itemName = normalize.SuffixItemNameWithSize(itemName, r.size.USToken())
	} else {
		r.out.Size = strings.TrimSpace(r.oracle.Size)
	}
	r.out.ItemName = itemName
}

func resolveDescription(r *resolution) {
	desc := r.oracle.ShopifyDescription

	sized := r.size.HasUS() && r.size.HasAlt()
	if sized {
		desc = normalize.StripSizeLines(desc)
	}

	desc = normalize.CleanDescription(desc, r.out.Brand, r.out.ItemName)

	if sized {
		line := r.size.DescriptionLine()
		if desc == "" {
			desc = line
		} else {
			desc += "\n" + line
		}
	}
	r.out.ShopifyDescription = desc
}

// resolveLocation ignores the backend's location guess entirely; only
// raw-input keywords place an item at a store.
func resolveLocation(r *resolution) {
	r.out.Location = normalize.InferLocation(r.raw)
}

func resolveConsignment(r *resolution) {
	r.consign = normalize.DetectConsignment(r.raw, r.cfg.DefaultPayoutPct)

	if !r.consign.IsConsignment {
		// The backend's payout guess alone still marks consignment.
		if pct, ok := parsePct(r.oracle.ConsignmentPayoutPct); ok {
			r.consign = normalize.ConsignmentSignal{
				IsConsignment: true,
				PayoutPct:     normalize.Clamp(pct, 0, 100),
			}
		}
	}

	r.out.IsConsignment = r.consign.IsConsignment
	if r.consign.IsConsignment {
		r.out.ConsignmentPayoutPct = r.consign.PayoutPct
	}
}

// resolveCost runs after consignment detection: consigned items carry
// no acquisition cost.
func resolveCost(r *resolution) {
	if r.out.IsConsignment {
		r.out.Cost = "0"
		r.out.IntakeCost = nil
		return
	}

	intake := normalize.ParseMoney(r.oracle.IntakeCost)
	if intake == "" {
		intake = r.out.Cost
	}
	if v, err := strconv.ParseFloat(intake, 64); err == nil {
		r.out.IntakeCost = &v
	}
}

func resolveVendor(r *resolution) {
	candidate := normalize.ExtractVendor(r.raw)
	if candidate == "" {
		candidate = strings.TrimSpace(r.oracle.Vendor)
	}
	if candidate == "" {
		candidate = strings.TrimSpace(r.oracle.VendorSource)
	}

	if name, ok := normalize.ExtractVendorShorthand(candidate); ok {
		candidate = name
	}

	vendor := candidate
	if vendor != "" && r.directory != nil {
		match, err := r.directory.BestMatch(r.ctx, vendor)
		switch {
		case err != nil:
			// Lookup failure degrades to the extracted fragment.
			r.logger.WarnContext(r.ctx, "vendor lookup failed",
				"query", vendor, "error", err)
		case match != "":
			vendor = match
		}
	}

	if vendor == "" && !r.out.IsConsignment && costValue(r.out.Cost) > 0 {
		vendor = r.cfg.DefaultVendor
	}

	r.out.Vendor = vendor
	r.out.VendorSource = strings.TrimSpace(r.oracle.VendorSource)
	if r.out.VendorSource == "" {
		r.out.VendorSource = vendor
	}
}

func parsePct(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v, err == nil
}

func costValue(cost string) float64 {
	v, err := strconv.ParseFloat(cost, 64)
	if err != nil {
		return 0
	}
	return v
}
