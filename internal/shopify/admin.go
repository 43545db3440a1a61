package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultAPIVersion = "2024-10"

// AdminClient implements CatalogClient against the Shopify Admin REST
// API.
type AdminClient struct {
	apiVersion string
	tokens     TokenProvider
	limiter    *RateLimiter
	client     *http.Client

	// endpoint overrides the per-shop https://<domain> base URL; used
	// by tests and the mock server.
	endpoint string
}

// AdminOption configures the AdminClient.
type AdminOption func(*AdminClient)

// WithAPIVersion overrides the default Admin API version.
func WithAPIVersion(v string) AdminOption {
	return func(c *AdminClient) {
		c.apiVersion = v
	}
}

// WithAdminEndpoint overrides the per-shop base URL.
func WithAdminEndpoint(url string) AdminOption {
	return func(c *AdminClient) {
		c.endpoint = strings.TrimSuffix(url, "/")
	}
}

// WithAdminHTTPClient overrides the default HTTP client.
func WithAdminHTTPClient(hc *http.Client) AdminOption {
	return func(c *AdminClient) {
		c.client = hc
	}
}

// WithRateLimiter sets the request pacer.
func WithRateLimiter(r *RateLimiter) AdminOption {
	return func(c *AdminClient) {
		c.limiter = r
	}
}

// NewAdminClient creates an Admin API client whose tokens come from
// the given provider.
func NewAdminClient(tokens TokenProvider, opts ...AdminOption) *AdminClient {
	c := &AdminClient{
		apiVersion: defaultAPIVersion,
		tokens:     tokens,
		limiter:    NewRateLimiter(2, 4),
		client:     &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type productEnvelope struct {
	Product productPayload `json:"product"`
}

type productPayload struct {
	ID          int64            `json:"id,omitempty"`
	Title       string           `json:"title"`
	BodyHTML    string           `json:"body_html,omitempty"`
	Vendor      string           `json:"vendor,omitempty"`
	ProductType string           `json:"product_type,omitempty"`
	Tags        string           `json:"tags,omitempty"`
	Status      string           `json:"status"`
	Variants    []variantPayload `json:"variants,omitempty"`
}

type variantPayload struct {
	Price               string `json:"price,omitempty"`
	SKU                 string `json:"sku,omitempty"`
	InventoryManagement string `json:"inventory_management,omitempty"`
}

type locationsEnvelope struct {
	Locations []locationPayload `json:"locations"`
}

type locationPayload struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// CreateDraftProduct creates an unpublished product in the shop's
// catalog and returns its catalog identity.
func (c *AdminClient) CreateDraftProduct(
	ctx context.Context,
	shopDomain string,
	p DraftProduct,
) (*Product, error) {
	payload := productEnvelope{Product: productPayload{
		Title:       p.Title,
		BodyHTML:    p.BodyHTML,
		Vendor:      p.Vendor,
		ProductType: p.ProductType,
		Tags:        strings.Join(p.Tags, ", "),
		Status:      "draft",
	}}
	if p.Price != "" || p.SKU != "" {
		payload.Product.Variants = []variantPayload{{
			Price:               p.Price,
			SKU:                 p.SKU,
			InventoryManagement: "shopify",
		}}
	}

	var created productEnvelope
	err := c.do(ctx, http.MethodPost, shopDomain, "products.json", payload, &created)
	if err != nil {
		return nil, fmt.Errorf("creating draft product: %w", err)
	}

	return &Product{
		ID:     created.Product.ID,
		Title:  created.Product.Title,
		Status: created.Product.Status,
	}, nil
}

// ListLocations returns the shop's fulfillment locations.
func (c *AdminClient) ListLocations(
	ctx context.Context,
	shopDomain string,
) ([]Location, error) {
	var envelope locationsEnvelope
	err := c.do(ctx, http.MethodGet, shopDomain, "locations.json", nil, &envelope)
	if err != nil {
		return nil, fmt.Errorf("listing locations: %w", err)
	}

	locations := make([]Location, 0, len(envelope.Locations))
	for _, l := range envelope.Locations {
		locations = append(locations, Location{ID: l.ID, Name: l.Name, Active: l.Active})
	}
	return locations, nil
}

func (c *AdminClient) do(
	ctx context.Context,
	method, shopDomain, path string,
	body, out any,
) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	token, err := c.tokens.Token(ctx, shopDomain)
	if err != nil {
		return fmt.Errorf("resolving access token: %w", err)
	}

	base := c.endpoint
	if base == "" {
		base = "https://" + shopDomain
	}
	url := fmt.Sprintf("%s/admin/api/%s/%s", base, c.apiVersion, path)

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling admin API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf(
			"admin API error (status %d): %s",
			resp.StatusCode,
			string(respBody),
		)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("parsing response: %w", err)
		}
	}
	return nil
}
