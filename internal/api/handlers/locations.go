package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/streetcommerce/intake/internal/shopify"
	domain "github.com/streetcommerce/intake/pkg/types"
)

// LocationsHandler answers store-location requests.
type LocationsHandler struct {
	catalog    shopify.CatalogClient
	shopDomain string
}

// NewLocationsHandler creates a new LocationsHandler.
func NewLocationsHandler(catalog shopify.CatalogClient, shopDomain string) *LocationsHandler {
	return &LocationsHandler{catalog: catalog, shopDomain: shopDomain}
}

// ListLocationsOutput is the response for listing locations.
type ListLocationsOutput struct {
	Body struct {
		// Known is the set of canonical intake labels.
		Known []string `json:"known"`
		// Catalog is the merchant's fulfillment locations.
		Catalog []shopifyLocation `json:"catalog"`
	}
}

type shopifyLocation struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// ListLocations returns the canonical intake labels alongside the
// merchant's fulfillment locations.
func (h *LocationsHandler) ListLocations(
	ctx context.Context,
	_ *struct{},
) (*ListLocationsOutput, error) {
	locations, err := h.catalog.ListLocations(ctx, h.shopDomain)
	if err != nil {
		return nil, huma.Error502BadGateway("listing catalog locations: " + err.Error())
	}

	resp := &ListLocationsOutput{}
	resp.Body.Known = make([]string, 0, len(domain.KnownLocations))
	for _, loc := range domain.KnownLocations {
		resp.Body.Known = append(resp.Body.Known, string(loc))
	}

	resp.Body.Catalog = make([]shopifyLocation, 0, len(locations))
	for _, loc := range locations {
		resp.Body.Catalog = append(resp.Body.Catalog, shopifyLocation{
			ID:     loc.ID,
			Name:   loc.Name,
			Active: loc.Active,
		})
	}

	return resp, nil
}

// RegisterLocationRoutes registers location endpoints with the Huma API.
func RegisterLocationRoutes(api huma.API, h *LocationsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-locations",
		Method:      http.MethodGet,
		Path:        "/api/v1/locations",
		Summary:     "List store and catalog locations",
		Tags:        []string{"locations"},
		Errors:      []int{http.StatusBadGateway},
	}, h.ListLocations)
}
