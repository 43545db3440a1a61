package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/streetcommerce/intake/internal/api/handlers"
	"github.com/streetcommerce/intake/internal/notify"
	"github.com/streetcommerce/intake/internal/shopify"
	"github.com/streetcommerce/intake/internal/store"
	storeMocks "github.com/streetcommerce/intake/internal/store/mocks"
	"github.com/streetcommerce/intake/pkg/logger"
	domain "github.com/streetcommerce/intake/pkg/types"
)

type fakeCatalog struct {
	product *shopify.Product
	err     error

	lastShop  string
	lastDraft shopify.DraftProduct
	called    bool
}

func (f *fakeCatalog) CreateDraftProduct(_ context.Context, shopDomain string, p shopify.DraftProduct) (*shopify.Product, error) {
	f.called = true
	f.lastShop = shopDomain
	f.lastDraft = p
	return f.product, f.err
}

func (f *fakeCatalog) ListLocations(_ context.Context, _ string) ([]shopify.Location, error) {
	return nil, errors.New("not implemented")
}

type fakeNotifier struct {
	err  error
	sent []notify.ItemPayload
}

func (f *fakeNotifier) SendItemIntaken(_ context.Context, item notify.ItemPayload) error {
	f.sent = append(f.sent, item)
	return f.err
}

func priceCents(v int64) *int64 { return &v }

func TestPublishHandler_PublishItem(t *testing.T) {
	t.Parallel()

	storedItem := func() *domain.Item {
		return &domain.Item{
			ID:         "i1",
			Title:      "Rick Owens Ramone Sneakers",
			Vendor:     "Street Commerce",
			Location:   "DuPont Store",
			Condition:  "9",
			PriceCents: priceCents(90000),
		}
	}

	t.Run("pushes draft and records product ID", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().GetItem(mock.Anything, "i1").Return(storedItem(), nil).Once()
		ms.EXPECT().SetItemProduct(mock.Anything, "i1", int64(42)).Return(nil).Once()

		catalog := &fakeCatalog{product: &shopify.Product{ID: 42, Status: "draft"}}
		notifier := &fakeNotifier{}

		h := handlers.NewPublishHandler(ms, catalog, notifier, "teststore.myshopify.com", logger.Nop())

		_, api := humatest.New(t)
		handlers.RegisterPublishRoutes(api, h)

		resp := api.Post("/api/v1/items/i1/publish", map[string]any{})
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"product_id":42`)
		assert.Contains(t, resp.Body.String(), `"status":"draft"`)

		assert.Equal(t, "teststore.myshopify.com", catalog.lastShop)
		assert.Equal(t, "Rick Owens Ramone Sneakers", catalog.lastDraft.Title)
		assert.Equal(t, "900.00", catalog.lastDraft.Price)

		require.Len(t, notifier.sent, 1)
		assert.Equal(t, "900.00", notifier.sent[0].Price)
		assert.Equal(t, "DuPont Store", notifier.sent[0].Location)
	})

	t.Run("already published returns 409", func(t *testing.T) {
		t.Parallel()

		item := storedItem()
		existing := int64(7)
		item.ProductID = &existing

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().GetItem(mock.Anything, "i1").Return(item, nil).Once()

		catalog := &fakeCatalog{}
		h := handlers.NewPublishHandler(ms, catalog, &fakeNotifier{}, "teststore.myshopify.com", logger.Nop())

		_, api := humatest.New(t)
		handlers.RegisterPublishRoutes(api, h)

		resp := api.Post("/api/v1/items/i1/publish", map[string]any{})
		assert.Equal(t, http.StatusConflict, resp.Code)
		assert.Contains(t, resp.Body.String(), "already published as product 7")
		assert.False(t, catalog.called)
	})

	t.Run("missing item returns 404", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().GetItem(mock.Anything, "nope").Return(nil, store.ErrNotFound).Once()

		h := handlers.NewPublishHandler(ms, &fakeCatalog{}, &fakeNotifier{}, "teststore.myshopify.com", logger.Nop())

		_, api := humatest.New(t)
		handlers.RegisterPublishRoutes(api, h)

		resp := api.Post("/api/v1/items/nope/publish", map[string]any{})
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("catalog failure returns 502 without bookkeeping", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().GetItem(mock.Anything, "i1").Return(storedItem(), nil).Once()

		catalog := &fakeCatalog{err: errors.New("429 too many requests")}
		notifier := &fakeNotifier{}

		h := handlers.NewPublishHandler(ms, catalog, notifier, "teststore.myshopify.com", logger.Nop())

		_, api := humatest.New(t)
		handlers.RegisterPublishRoutes(api, h)

		resp := api.Post("/api/v1/items/i1/publish", map[string]any{})
		assert.Equal(t, http.StatusBadGateway, resp.Code)
		assert.Contains(t, resp.Body.String(), "catalog push failed")
		assert.Empty(t, notifier.sent)
	})

	t.Run("notifier failure does not fail the publish", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().GetItem(mock.Anything, "i1").Return(storedItem(), nil).Once()
		ms.EXPECT().SetItemProduct(mock.Anything, "i1", int64(42)).Return(nil).Once()

		catalog := &fakeCatalog{product: &shopify.Product{ID: 42, Status: "draft"}}
		notifier := &fakeNotifier{err: errors.New("webhook gone")}

		h := handlers.NewPublishHandler(ms, catalog, notifier, "teststore.myshopify.com", logger.Nop())

		_, api := humatest.New(t)
		handlers.RegisterPublishRoutes(api, h)

		resp := api.Post("/api/v1/items/i1/publish", map[string]any{})
		assert.Equal(t, http.StatusOK, resp.Code)
	})
}
