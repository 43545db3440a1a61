package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/streetcommerce/intake/internal/vendors"
)

// VendorsHandler answers vendor roster and lookup requests.
type VendorsHandler struct {
	directory vendorDirectory
}

// vendorDirectory is the slice of the cached directory the handler
// needs.
type vendorDirectory interface {
	vendors.Directory
	vendors.Lister
}

// NewVendorsHandler creates a new VendorsHandler.
func NewVendorsHandler(d vendorDirectory) *VendorsHandler {
	return &VendorsHandler{directory: d}
}

// ListVendorsInput is the input for vendor listing and lookup.
type ListVendorsInput struct {
	Query string `query:"q" doc:"Optional free-text fragment to match against the roster" example:"ms. chen"`
}

// ListVendorsOutput is the response for vendor listing and lookup.
type ListVendorsOutput struct {
	Body struct {
		Vendors []string `json:"vendors"`
		Match   string   `json:"match,omitempty" doc:"Best roster match for q, empty on a miss"`
	}
}

// ListVendors returns the vendor roster, and when q is given, the best
// roster match for it.
func (h *VendorsHandler) ListVendors(
	ctx context.Context,
	input *ListVendorsInput,
) (*ListVendorsOutput, error) {
	roster, err := h.directory.List(ctx)
	if err != nil {
		return nil, huma.Error502BadGateway("vendor directory unavailable: " + err.Error())
	}

	if roster == nil {
		roster = []string{}
	}

	resp := &ListVendorsOutput{}
	resp.Body.Vendors = roster

	if input.Query != "" {
		match, err := h.directory.BestMatch(ctx, input.Query)
		if err != nil {
			return nil, huma.Error502BadGateway("vendor lookup failed: " + err.Error())
		}
		resp.Body.Match = match
	}

	return resp, nil
}

// RegisterVendorRoutes registers vendor endpoints with the Huma API.
func RegisterVendorRoutes(api huma.API, h *VendorsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-vendors",
		Method:      http.MethodGet,
		Path:        "/api/v1/vendors",
		Summary:     "List vendors and resolve a name fragment",
		Tags:        []string{"vendors"},
		Errors:      []int{http.StatusBadGateway},
	}, h.ListVendors)
}
