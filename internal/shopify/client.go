// Package shopify provides a Shopify Admin API client abstracted
// behind interfaces for testability. Only the slice of the Admin API
// the intake flow needs is covered: draft product creation and
// location listing.
package shopify

import (
	"context"
)

// DraftProduct is the payload for a new unpublished catalog product.
type DraftProduct struct {
	Title       string
	BodyHTML    string
	Vendor      string
	ProductType string
	Tags        []string
	Price       string
	SKU         string
}

// Product is a created catalog product.
type Product struct {
	ID     int64
	Title  string
	Status string
}

// Location is a fulfillment location in the merchant's catalog.
type Location struct {
	ID     int64
	Name   string
	Active bool
}

// CatalogClient defines the interface for pushing intake results into
// the merchant's catalog.
type CatalogClient interface {
	CreateDraftProduct(ctx context.Context, shopDomain string, p DraftProduct) (*Product, error)
	ListLocations(ctx context.Context, shopDomain string) ([]Location, error)
}

// TokenProvider defines the interface for obtaining a shop's Admin API
// access token.
type TokenProvider interface {
	Token(ctx context.Context, shopDomain string) (string, error)
}
