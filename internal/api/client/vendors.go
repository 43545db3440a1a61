package client

import (
	"context"
	"net/url"
)

// VendorList is the vendors endpoint's response.
type VendorList struct {
	Vendors []string `json:"vendors"`
	Match   string   `json:"match,omitempty"`
}

// CatalogLocation is one fulfillment location entry.
type CatalogLocation struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// LocationList is the locations endpoint's response.
type LocationList struct {
	Known   []string          `json:"known"`
	Catalog []CatalogLocation `json:"catalog"`
}

// DefaultLocation is the default-location setting.
type DefaultLocation struct {
	DefaultLocationID string `json:"default_location_id"`
}

// ListVendors returns the roster and, when query is non-empty, its
// best match.
func (c *Client) ListVendors(ctx context.Context, query string) (*VendorList, error) {
	path := "/api/v1/vendors"
	if query != "" {
		path += "?q=" + url.QueryEscape(query)
	}

	var list VendorList
	if err := c.get(ctx, path, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ListLocations returns canonical labels plus catalog locations.
func (c *Client) ListLocations(ctx context.Context) (*LocationList, error) {
	var list LocationList
	if err := c.get(ctx, "/api/v1/locations", &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetDefaultLocation reads the default fulfillment location setting.
func (c *Client) GetDefaultLocation(ctx context.Context) (*DefaultLocation, error) {
	var setting DefaultLocation
	if err := c.get(ctx, "/api/v1/settings/default-location", &setting); err != nil {
		return nil, err
	}
	return &setting, nil
}

// SetDefaultLocation saves the default fulfillment location setting.
func (c *Client) SetDefaultLocation(ctx context.Context, locationID string) error {
	body := DefaultLocation{DefaultLocationID: locationID}
	return c.put(ctx, "/api/v1/settings/default-location", body, nil)
}
