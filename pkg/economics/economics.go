// Package economics holds the money math behind an intake decision:
// what the consignor is owed, what the store keeps, and what a straight
// purchase earns. Pure functions over plain values.
package economics

import (
	"math"
	"strconv"

	domain "github.com/streetcommerce/intake/pkg/types"
)

// Breakdown is the projected economics of one intake record at its
// listed price.
type Breakdown struct {
	Price float64 `json:"price"`

	// Consignment split. Zero for purchased items.
	VendorPayout float64 `json:"vendor_payout"`
	StoreCut     float64 `json:"store_cut"`

	// Purchase economics. Zero for consigned items.
	Cost      float64 `json:"cost"`
	Profit    float64 `json:"profit"`
	MarginPct float64 `json:"margin_pct"`
}

// Compute projects the economics of a normalized record. Unparseable
// money fields count as zero.
func Compute(rec *domain.IntakeFields) Breakdown {
	price := moneyValue(rec.Price)

	if rec.IsConsignment {
		payout := round2(price * rec.ConsignmentPayoutPct / 100)
		return Breakdown{
			Price:        price,
			VendorPayout: payout,
			StoreCut:     round2(price - payout),
		}
	}

	cost := moneyValue(rec.Cost)
	if rec.IntakeCost != nil {
		cost = *rec.IntakeCost
	}
	profit := round2(price - cost)

	b := Breakdown{
		Price:  price,
		Cost:   cost,
		Profit: profit,
	}
	if price > 0 {
		b.MarginPct = round2(profit / price * 100)
	}
	return b
}

// PayoutPct derives a consignor percentage from either an explicit
// percent or a flat payout amount against the listed price. Explicit
// percent wins; a flat amount needs a positive price to be meaningful.
func PayoutPct(explicitPct, payoutAmount, price float64) float64 {
	if explicitPct > 0 {
		return clampPct(explicitPct)
	}
	if payoutAmount > 0 && price > 0 {
		return clampPct(round2(payoutAmount / price * 100))
	}
	return 0
}

func clampPct(v float64) float64 {
	return math.Min(math.Max(v, 0), 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func moneyValue(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
