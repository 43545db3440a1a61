package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/streetcommerce/intake/internal/store"
	domain "github.com/streetcommerce/intake/pkg/types"
)

// ItemsHandler handles inventory item endpoints.
type ItemsHandler struct {
	store store.Store
}

// NewItemsHandler creates a new ItemsHandler.
func NewItemsHandler(s store.Store) *ItemsHandler {
	return &ItemsHandler{store: s}
}

// --- Input/Output types ---

// ListItemsInput is the input for listing items with optional filters.
type ListItemsInput struct {
	Vendor    string `query:"vendor"    doc:"Filter by vendor name"`
	Location  string `query:"location"  doc:"Filter by store location"      enum:"DuPont Store,Charlotte Store,"`
	Published string `query:"published" doc:"Filter by catalog push status" enum:"true,false,"`
	Limit     int    `query:"limit"     doc:"Number of results (default 50)" minimum:"1" maximum:"500"`
	Offset    int    `query:"offset"    doc:"Pagination offset"              minimum:"0"`
	OrderBy   string `query:"order_by"  doc:"Sort field"                   enum:"created_at,price,"`
}

// ListItemsOutput is the response for listing items.
type ListItemsOutput struct {
	Body struct {
		Items  []domain.Item `json:"items"`
		Total  int           `json:"total"`
		Limit  int           `json:"limit"`
		Offset int           `json:"offset"`
	}
}

// GetItemInput is the input for getting a single item.
type GetItemInput struct {
	ID string `path:"id" doc:"Item UUID"`
}

// GetItemOutput is the response for getting a single item.
type GetItemOutput struct {
	Body domain.Item
}

// CreateItemInput is the request body for creating an item.
type CreateItemInput struct {
	Body struct {
		Title      string   `json:"title" minLength:"1" doc:"Product title"`
		SKU        string   `json:"sku,omitempty"`
		Brand      string   `json:"brand,omitempty"`
		Category   string   `json:"category,omitempty"`
		Condition  string   `json:"condition,omitempty"`
		PriceCents *int64   `json:"price_cents,omitempty" doc:"Asking price in cents"`
		Notes      string   `json:"notes,omitempty"`
		Location   string   `json:"location,omitempty"`
		Vendor     string   `json:"vendor,omitempty"`
		Tags       []string `json:"tags,omitempty"`
	}
}

// CreateItemOutput is the response for creating an item.
type CreateItemOutput struct {
	Status int
	Body   domain.Item
}

// --- Handlers ---

// ListItems returns items with optional vendor, location, and publish
// filters plus pagination.
func (h *ItemsHandler) ListItems(
	ctx context.Context,
	input *ListItemsInput,
) (*ListItemsOutput, error) {
	q := &store.ItemQuery{
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}

	if input.Vendor != "" {
		q.Vendor = &input.Vendor
	}

	if input.Location != "" {
		q.Location = &input.Location
	}

	if input.Published != "" {
		published := input.Published == "true"
		q.Published = &published
	}

	if input.Limit != 0 {
		q.Limit = input.Limit
	}

	items, total, err := h.store.ListItems(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("item query failed: " + err.Error())
	}

	if items == nil {
		items = []domain.Item{}
	}

	resp := &ListItemsOutput{}
	resp.Body.Items = items
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset

	return resp, nil
}

// GetItem returns a single item by ID.
func (h *ItemsHandler) GetItem(
	ctx context.Context,
	input *GetItemInput,
) (*GetItemOutput, error) {
	item, err := h.store.GetItem(ctx, input.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("item not found")
		}
		return nil, huma.Error500InternalServerError("fetching item: " + err.Error())
	}

	return &GetItemOutput{Body: *item}, nil
}

// CreateItem persists a new inventory item.
func (h *ItemsHandler) CreateItem(
	ctx context.Context,
	input *CreateItemInput,
) (*CreateItemOutput, error) {
	item := &domain.Item{
		Title:      input.Body.Title,
		SKU:        input.Body.SKU,
		Brand:      input.Body.Brand,
		Category:   input.Body.Category,
		Condition:  input.Body.Condition,
		PriceCents: input.Body.PriceCents,
		Notes:      input.Body.Notes,
		Location:   input.Body.Location,
		Vendor:     input.Body.Vendor,
		Tags:       input.Body.Tags,
	}

	if err := h.store.InsertItem(ctx, item); err != nil {
		return nil, huma.Error500InternalServerError("creating item: " + err.Error())
	}

	return &CreateItemOutput{
		Status: http.StatusCreated,
		Body:   *item,
	}, nil
}

// RegisterItemRoutes registers item endpoints with the Huma API.
func RegisterItemRoutes(api huma.API, h *ItemsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-items",
		Method:      http.MethodGet,
		Path:        "/api/v1/items",
		Summary:     "List inventory items",
		Tags:        []string{"items"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListItems)

	huma.Register(api, huma.Operation{
		OperationID: "get-item",
		Method:      http.MethodGet,
		Path:        "/api/v1/items/{id}",
		Summary:     "Get an inventory item by ID",
		Tags:        []string{"items"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetItem)

	huma.Register(api, huma.Operation{
		OperationID:   "create-item",
		Method:        http.MethodPost,
		Path:          "/api/v1/items",
		Summary:       "Create an inventory item",
		DefaultStatus: http.StatusCreated,
		Tags:          []string{"items"},
		Errors:        []int{http.StatusInternalServerError},
	}, h.CreateItem)
}
