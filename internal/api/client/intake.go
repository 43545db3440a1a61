package client

import (
	"context"

	"github.com/streetcommerce/intake/pkg/economics"
	domain "github.com/streetcommerce/intake/pkg/types"
)

// ParseResult is the parse endpoint's response.
type ParseResult struct {
	Fields    domain.IntakeFields `json:"fields"`
	Economics economics.Breakdown `json:"economics"`
}

// ComposeRequest is the compose endpoint's request body.
type ComposeRequest struct {
	Brand        string `json:"brand,omitempty"`
	ItemName     string `json:"item_name"`
	CategoryPath string `json:"category_path,omitempty"`
	Size         string `json:"size,omitempty"`
	Condition    string `json:"condition,omitempty"`
	Location     string `json:"location,omitempty"`
}

// ComposeResult is the compose endpoint's response.
type ComposeResult struct {
	Title       string   `json:"title"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category,omitempty"`
	ProductType string   `json:"product_type,omitempty"`
}

// Parse normalizes one raw intake note.
func (c *Client) Parse(ctx context.Context, rawText string) (*ParseResult, error) {
	body := map[string]string{"raw_text": rawText}

	var result ParseResult
	if err := c.post(ctx, "/api/v1/intake/parse", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Compose builds the catalog title and tags for a record.
func (c *Client) Compose(ctx context.Context, req *ComposeRequest) (*ComposeResult, error) {
	var result ComposeResult
	if err := c.post(ctx, "/api/v1/intake/compose", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
