// Package store defines the datastore abstraction for the intake
// service. Handlers depend on the Store interface, never on a concrete
// implementation, so tests run without a database.
package store

import (
	"context"
	"errors"

	domain "github.com/streetcommerce/intake/pkg/types"
)

// Persistence errors. Handlers map these to distinct HTTP responses,
// so a missing row, an unmigrated schema, and a missing DSN must stay
// distinguishable.
var (
	ErrNotFound      = errors.New("store: not found")
	ErrMissingDSN    = errors.New("store: database connection string not configured")
	ErrSchemaMissing = errors.New("store: schema not migrated")
)

// ItemQuery defines optional filters for item listings.
type ItemQuery struct {
	Vendor    *string
	Location  *string
	Published *bool // pushed to the catalog or not
	Limit     int   // default 50
	Offset    int
	OrderBy   string // "created_at", "price"
}

// Store defines all data access operations for the intake service.
type Store interface {
	// Shops
	UpsertShop(ctx context.Context, s *domain.Shop) error
	GetShopToken(ctx context.Context, shopDomain string) (string, error)

	// Items
	InsertItem(ctx context.Context, item *domain.Item) error
	GetItem(ctx context.Context, id string) (*domain.Item, error)
	ListItems(ctx context.Context, opts *ItemQuery) ([]domain.Item, int, error)
	SetItemProduct(ctx context.Context, id string, productID int64) error

	// Settings
	GetSettings(ctx context.Context, shopDomain string) (*domain.ShopSettings, error)
	PutSettings(ctx context.Context, s *domain.ShopSettings) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error

	Close()
}
