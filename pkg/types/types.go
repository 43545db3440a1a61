// Package domain defines the core business types for the consignment
// intake service.
package domain

import (
	"time"
)

// StoreLocation is a canonical store label used on intake records.
type StoreLocation string

// Store location constants.
const (
	LocationDuPont    StoreLocation = "DuPont Store"
	LocationCharlotte StoreLocation = "Charlotte Store"
)

// KnownLocations lists every canonical store label.
var KnownLocations = []StoreLocation{LocationDuPont, LocationCharlotte}

// ExtractionResult is the structured field guess returned by the LLM for
// one raw intake note. Every field is a string; the two consignment
// fields tolerate numeric JSON values and are coerced to strings during
// validation. It is transient: validated, folded into IntakeFields, and
// discarded.
type ExtractionResult struct {
	Brand                string `json:"brand"`
	ItemName             string `json:"itemName"`
	CategoryPath         string `json:"categoryPath"`
	ShopifyDescription   string `json:"shopifyDescription"`
	Size                 string `json:"size"`
	Condition            string `json:"condition"`
	Cost                 string `json:"cost"`
	Price                string `json:"price"`
	Location             string `json:"location"`
	VendorSource         string `json:"vendorSource"`
	Vendor               string `json:"vendor"`
	ConsignmentPayoutPct string `json:"consignmentPayoutPct"`
	IntakeCost           string `json:"intakeCost"`
}

// IntakeFields is the final normalized intake record: deterministically
// derived from (raw input, ExtractionResult), no independent identity.
type IntakeFields struct {
	Brand              string `json:"brand"`
	ItemName           string `json:"itemName"`
	CategoryPath       string `json:"categoryPath"`
	ShopifyDescription string `json:"shopifyDescription"`
	Size               string `json:"size"`
	Condition          string `json:"condition"`
	Cost               string `json:"cost"`
	Price              string `json:"price"`
	Location           string `json:"location"`
	VendorSource       string `json:"vendorSource"`
	Vendor             string `json:"vendor"`

	IsConsignment        bool    `json:"isConsignment"`
	ConsignmentPayoutPct float64 `json:"consignmentPayoutPct"`

	// IntakeCost is set only for store-purchased items; consignment
	// items carry no acquisition cost.
	IntakeCost *float64 `json:"intakeCost,omitempty"`
}

// Item is a persisted inventory intake row.
type Item struct {
	ID         string     `json:"id"                    db:"id"`
	Title      string     `json:"title"                 db:"title"`
	SKU        string     `json:"sku,omitempty"         db:"sku"`
	Brand      string     `json:"brand,omitempty"       db:"brand"`
	Category   string     `json:"category,omitempty"    db:"category"`
	Condition  string     `json:"condition,omitempty"   db:"condition"`
	PriceCents *int64     `json:"price_cents,omitempty" db:"price_cents"`
	Notes      string     `json:"notes,omitempty"       db:"notes"`
	Location   string     `json:"location,omitempty"    db:"location"`
	Vendor     string     `json:"vendor,omitempty"      db:"vendor"`
	Tags       []string   `json:"tags,omitempty"        db:"tags"`
	ProductID  *int64     `json:"product_id,omitempty"  db:"product_id"`
	PushedAt   *time.Time `json:"pushed_at,omitempty"   db:"pushed_at"`
	CreatedAt  time.Time  `json:"created_at"            db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"            db:"updated_at"`
}

// Shop is an installed merchant with its offline access token.
type Shop struct {
	ID          string    `json:"id"          db:"id"`
	ShopDomain  string    `json:"shop_domain" db:"shop_domain"`
	AccessToken string    `json:"-"           db:"access_token"`
	CreatedAt   time.Time `json:"created_at"  db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"  db:"updated_at"`
}

// ShopSettings holds per-shop preferences.
type ShopSettings struct {
	ShopDomain        string `json:"shop_domain"        db:"shop_domain"`
	DefaultLocationID string `json:"default_location_id" db:"default_location_id"`
}
