package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/streetcommerce/intake/pkg/types"
)

// ItemFilter narrows an item listing.
type ItemFilter struct {
	Vendor    string
	Location  string
	Published string // "true", "false", or "" for both
	Limit     int
	Offset    int
	OrderBy   string
}

// ItemList is the items endpoint's response.
type ItemList struct {
	Items  []domain.Item `json:"items"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

// PublishResult is the publish endpoint's response.
type PublishResult struct {
	ProductID int64  `json:"product_id"`
	Status    string `json:"status"`
}

// ListItems returns items matching the filter.
func (c *Client) ListItems(ctx context.Context, filter *ItemFilter) (*ItemList, error) {
	path := "/api/v1/items"
	if filter != nil {
		q := url.Values{}
		if filter.Vendor != "" {
			q.Set("vendor", filter.Vendor)
		}
		if filter.Location != "" {
			q.Set("location", filter.Location)
		}
		if filter.Published != "" {
			q.Set("published", filter.Published)
		}
		if filter.Limit > 0 {
			q.Set("limit", strconv.Itoa(filter.Limit))
		}
		if filter.Offset > 0 {
			q.Set("offset", strconv.Itoa(filter.Offset))
		}
		if filter.OrderBy != "" {
			q.Set("order_by", filter.OrderBy)
		}
		if encoded := q.Encode(); encoded != "" {
			path += "?" + encoded
		}
	}

	var list ItemList
	if err := c.get(ctx, path, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetItem returns a single item by ID.
func (c *Client) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	var item domain.Item
	if err := c.get(ctx, "/api/v1/items/"+id, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItem persists a new item and returns it with its assigned ID.
func (c *Client) CreateItem(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	var created domain.Item
	if err := c.post(ctx, "/api/v1/items", item, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// PublishItem pushes an item to the catalog as a draft product.
func (c *Client) PublishItem(ctx context.Context, id string) (*PublishResult, error) {
	var result PublishResult
	if err := c.post(ctx, "/api/v1/items/"+id+"/publish", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
