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
	"github.com/streetcommerce/intake/internal/store"
	storeMocks "github.com/streetcommerce/intake/internal/store/mocks"
	domain "github.com/streetcommerce/intake/pkg/types"
)

func TestItemsHandler_ListItems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "returns items",
			path: "/api/v1/items",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListItems(mock.Anything, mock.Anything).
					Return([]domain.Item{
						{ID: "i1", Title: "Rick Owens Ramone Sneakers"},
					}, 1, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"Rick Owens Ramone Sneakers"`,
		},
		{
			name: "vendor and published filters forwarded",
			path: "/api/v1/items?vendor=Maria%20Lopez&published=false",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListItems(mock.Anything, mock.Anything).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"items":[]`,
		},
		{
			name: "store error",
			path: "/api/v1/items",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListItems(mock.Anything, mock.Anything).
					Return(nil, 0, errors.New("db error")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `item query failed`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			_, api := humatest.New(t)
			handlers.RegisterItemRoutes(api, handlers.NewItemsHandler(ms))

			resp := api.Get(tt.path)
			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestItemsHandler_ListItems_FilterValues(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)

	var captured *store.ItemQuery
	ms.EXPECT().
		ListItems(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, q *store.ItemQuery) ([]domain.Item, int, error) {
			captured = q
			return nil, 0, nil
		}).
		Once()

	_, api := humatest.New(t)
	handlers.RegisterItemRoutes(api, handlers.NewItemsHandler(ms))

	resp := api.Get("/api/v1/items?vendor=Maria%20Lopez&location=DuPont%20Store&published=true&limit=10&offset=20&order_by=price")
	require.Equal(t, http.StatusOK, resp.Code)

	require.NotNil(t, captured)
	require.NotNil(t, captured.Vendor)
	assert.Equal(t, "Maria Lopez", *captured.Vendor)
	require.NotNil(t, captured.Location)
	assert.Equal(t, "DuPont Store", *captured.Location)
	require.NotNil(t, captured.Published)
	assert.True(t, *captured.Published)
	assert.Equal(t, 10, captured.Limit)
	assert.Equal(t, 20, captured.Offset)
	assert.Equal(t, "price", captured.OrderBy)
}

func TestItemsHandler_GetItem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "found",
			id:   "i1",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetItem(mock.Anything, "i1").
					Return(&domain.Item{ID: "i1", Title: "Vintage Jacket"}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"Vintage Jacket"`,
		},
		{
			name: "missing returns 404",
			id:   "nope",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetItem(mock.Anything, "nope").
					Return(nil, store.ErrNotFound).
					Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `item not found`,
		},
		{
			name: "store failure returns 500",
			id:   "i1",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetItem(mock.Anything, "i1").
					Return(nil, errors.New("connection reset")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `fetching item`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			_, api := humatest.New(t)
			handlers.RegisterItemRoutes(api, handlers.NewItemsHandler(ms))

			resp := api.Get("/api/v1/items/" + tt.id)
			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestItemsHandler_CreateItem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       map[string]any
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "creates item",
			body: map[string]any{
				"title":       "Rick Owens Ramone Sneakers",
				"vendor":      "Street Commerce",
				"price_cents": 90000,
				"tags":        []string{"condition_9", "needs_photos"},
			},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					InsertItem(mock.Anything, mock.Anything).
					Return(nil).
					Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"Rick Owens Ramone Sneakers"`,
		},
		{
			name:       "missing title returns 422",
			body:       map[string]any{"vendor": "Maria Lopez"},
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `expected required property title to be present`,
		},
		{
			name: "store failure returns 500",
			body: map[string]any{"title": "Vintage Jacket"},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					InsertItem(mock.Anything, mock.Anything).
					Return(errors.New("db error")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `creating item`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			_, api := humatest.New(t)
			handlers.RegisterItemRoutes(api, handlers.NewItemsHandler(ms))

			resp := api.Post("/api/v1/items", tt.body)
			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}
