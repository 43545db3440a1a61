package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/streetcommerce/intake/internal/store"
	domain "github.com/streetcommerce/intake/pkg/types"
)

// SettingsHandler handles per-shop preference endpoints.
type SettingsHandler struct {
	store      store.Store
	shopDomain string
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(s store.Store, shopDomain string) *SettingsHandler {
	return &SettingsHandler{store: s, shopDomain: shopDomain}
}

// GetDefaultLocationOutput is the response for reading the default
// location setting.
type GetDefaultLocationOutput struct {
	Body struct {
		DefaultLocationID string `json:"default_location_id" example:"70503661811"`
	}
}

// PutDefaultLocationInput is the request for setting the default
// location.
type PutDefaultLocationInput struct {
	Body struct {
		DefaultLocationID string `json:"default_location_id" minLength:"1" doc:"Catalog location ID new drafts default to"`
	}
}

// PutDefaultLocationOutput is the response for setting the default
// location.
type PutDefaultLocationOutput struct {
	Body StatusResponse
}

// GetDefaultLocation returns the shop's default fulfillment location.
// A shop that never saved one gets an empty ID, not a 404.
func (h *SettingsHandler) GetDefaultLocation(
	ctx context.Context,
	_ *struct{},
) (*GetDefaultLocationOutput, error) {
	resp := &GetDefaultLocationOutput{}

	settings, err := h.store.GetSettings(ctx, h.shopDomain)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return resp, nil
		}
		return nil, huma.Error500InternalServerError("reading settings: " + err.Error())
	}

	resp.Body.DefaultLocationID = settings.DefaultLocationID
	return resp, nil
}

// PutDefaultLocation saves the shop's default fulfillment location.
func (h *SettingsHandler) PutDefaultLocation(
	ctx context.Context,
	input *PutDefaultLocationInput,
) (*PutDefaultLocationOutput, error) {
	settings := &domain.ShopSettings{
		ShopDomain:        h.shopDomain,
		DefaultLocationID: input.Body.DefaultLocationID,
	}

	if err := h.store.PutSettings(ctx, settings); err != nil {
		return nil, huma.Error500InternalServerError("saving settings: " + err.Error())
	}

	resp := &PutDefaultLocationOutput{}
	resp.Body.Status = "saved"
	return resp, nil
}

// RegisterSettingsRoutes registers settings endpoints with the Huma API.
func RegisterSettingsRoutes(api huma.API, h *SettingsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-default-location",
		Method:      http.MethodGet,
		Path:        "/api/v1/settings/default-location",
		Summary:     "Get the default fulfillment location",
		Tags:        []string{"settings"},
	}, h.GetDefaultLocation)

	huma.Register(api, huma.Operation{
		OperationID: "put-default-location",
		Method:      http.MethodPut,
		Path:        "/api/v1/settings/default-location",
		Summary:     "Set the default fulfillment location",
		Tags:        []string{"settings"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.PutDefaultLocation)
}
