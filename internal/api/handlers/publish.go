package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	"github.com/streetcommerce/intake/internal/metrics"
	"github.com/streetcommerce/intake/internal/notify"
	"github.com/streetcommerce/intake/internal/shopify"
	"github.com/streetcommerce/intake/internal/store"
	domain "github.com/streetcommerce/intake/pkg/types"
)

// PublishHandler pushes stored items into the merchant's catalog as
// draft products.
type PublishHandler struct {
	store      store.Store
	catalog    shopify.CatalogClient
	notifier   notify.Notifier
	shopDomain string
	logger     *slog.Logger
}

// NewPublishHandler creates a new PublishHandler.
func NewPublishHandler(
	s store.Store,
	catalog shopify.CatalogClient,
	notifier notify.Notifier,
	shopDomain string,
	logger *slog.Logger,
) *PublishHandler {
	return &PublishHandler{
		store:      s,
		catalog:    catalog,
		notifier:   notifier,
		shopDomain: shopDomain,
		logger:     logger,
	}
}

// PublishItemInput is the input for publishing an item.
type PublishItemInput struct {
	ID string `path:"id" doc:"Item UUID"`
}

// PublishItemOutput is the response for publishing an item.
type PublishItemOutput struct {
	Body struct {
		ProductID int64  `json:"product_id" example:"8412934881523"`
		Status    string `json:"status"     example:"draft"`
	}
}

// PublishItem creates a draft product for a stored item and records
// the resulting product ID. An item already pushed is rejected so the
// catalog never gets duplicate drafts.
func (h *PublishHandler) PublishItem(
	ctx context.Context,
	input *PublishItemInput,
) (*PublishItemOutput, error) {
	item, err := h.store.GetItem(ctx, input.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("item not found")
		}
		return nil, huma.Error500InternalServerError("fetching item: " + err.Error())
	}

	if item.ProductID != nil {
		return nil, huma.Error409Conflict(
			"item already published as product " + strconv.FormatInt(*item.ProductID, 10))
	}

	product, err := h.catalog.CreateDraftProduct(ctx, h.shopDomain, shopify.DraftFromItem(item))
	if err != nil {
		metrics.CatalogPushFailuresTotal.Inc()
		return nil, huma.Error502BadGateway("catalog push failed: " + err.Error())
	}

	metrics.CatalogPushesTotal.Inc()

	if err := h.store.SetItemProduct(ctx, item.ID, product.ID); err != nil {
		// The draft exists in the catalog; surface the bookkeeping
		// failure so staff can reconcile.
		return nil, huma.Error500InternalServerError(
			"draft created but recording product ID failed: " + err.Error())
	}

	h.announce(ctx, item, product)

	resp := &PublishItemOutput{}
	resp.Body.ProductID = product.ID
	resp.Body.Status = product.Status
	return resp, nil
}

func (h *PublishHandler) announce(ctx context.Context, item *domain.Item, product *shopify.Product) {
	payload := notify.ItemPayload{
		Title:     item.Title,
		Vendor:    item.Vendor,
		Location:  item.Location,
		Condition: item.Condition,
	}
	if item.PriceCents != nil {
		payload.Price = strconv.FormatFloat(float64(*item.PriceCents)/100, 'f', 2, 64)
	}

	if err := h.notifier.SendItemIntaken(ctx, payload); err != nil {
		metrics.NotificationFailuresTotal.Inc()
		h.logger.Warn("intake announcement failed",
			"item_id", item.ID,
			"product_id", product.ID,
			"err", err,
		)
	}
}

// RegisterPublishRoutes registers publish endpoints with the Huma API.
func RegisterPublishRoutes(api huma.API, h *PublishHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "publish-item",
		Method:      http.MethodPost,
		Path:        "/api/v1/items/{id}/publish",
		Summary:     "Push an item to the catalog as a draft product",
		Tags:        []string{"items"},
		Errors:      []int{http.StatusNotFound, http.StatusConflict, http.StatusBadGateway},
	}, h.PublishItem)
}
