package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/streetcommerce/intake/pkg/normalize"
)

// ComposeHandler handles deterministic title and tag composition. No
// model call is involved, so the endpoint is safe to hit on every
// keystroke of the intake form.
type ComposeHandler struct{}

// NewComposeHandler creates a new ComposeHandler.
func NewComposeHandler() *ComposeHandler {
	return &ComposeHandler{}
}

// ComposeInput is the request body for the compose endpoint.
type ComposeInput struct {
	Body struct {
		Brand        string `json:"brand,omitempty"         doc:"Brand name"               example:"Rick Owens"`
		ItemName     string `json:"item_name" minLength:"1" doc:"Item name"                example:"Pony Hair Ramone Sneakers"`
		CategoryPath string `json:"category_path,omitempty" doc:"Category path"            example:"Men's > Shoes > Sneakers"`
		Size         string `json:"size,omitempty"          doc:"US size token"            example:"US 12"`
		Condition    string `json:"condition,omitempty"     doc:"Condition score, 1 to 10" example:"9"`
		Location     string `json:"location,omitempty"      doc:"Store location label"     example:"DuPont Store"`
	}
}

// ComposeOutput is the response body for the compose endpoint.
type ComposeOutput struct {
	Body struct {
		Title       string   `json:"title" example:"Rick Owens Pony Hair Ramone Sneakers"`
		Tags        []string `json:"tags" example:"size_US 12,condition_9,loc_DuPont Store,needs_photos"`
		Category    string   `json:"category,omitempty" example:"Men's > Shoes"`
		ProductType string   `json:"product_type,omitempty" example:"Sneakers"`
	}
}

// Compose builds the catalog title and tag set for a normalized record.
func (*ComposeHandler) Compose(_ context.Context, input *ComposeInput) (*ComposeOutput, error) {
	category, leaf := normalize.SplitCategoryPath(input.Body.CategoryPath)

	resp := &ComposeOutput{}
	resp.Body.Title = normalize.ComposeTitle(input.Body.Brand, input.Body.ItemName, leaf)
	resp.Body.Tags = normalize.BuildTags(input.Body.Size, input.Body.Condition, input.Body.Location)
	resp.Body.Category = category
	resp.Body.ProductType = leaf
	return resp, nil
}

// RegisterComposeRoutes registers compose endpoints with the Huma API.
func RegisterComposeRoutes(api huma.API, h *ComposeHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "compose-listing",
		Method:      http.MethodPost,
		Path:        "/api/v1/intake/compose",
		Summary:     "Compose a catalog title and tags",
		Description: "Deterministically composes the product title, tag set, and category " +
			"split for an intake record. Never calls the model.",
		Tags: []string{"intake"},
	}, h.Compose)
}
