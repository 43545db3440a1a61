package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/streetcommerce/intake/pkg/types"
)

const defaultPoolSize = 10

// pgUndefinedTable is the Postgres error code raised when querying a
// table that does not exist yet.
const pgUndefinedTable = "42P01"

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	if connString == "" {
		return nil, ErrMissingDSN
	}

	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	if cfg.MaxConns == 0 {
		cfg.MaxConns = defaultPoolSize
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// UpsertShop inserts or refreshes a shop's access token by domain.
func (s *PostgresStore) UpsertShop(ctx context.Context, shop *domain.Shop) error {
	args := pgx.NamedArgs{
		"shop_domain":  shop.ShopDomain,
		"access_token": shop.AccessToken,
	}

	err := s.pool.QueryRow(ctx, queryUpsertShop, args).Scan(
		&shop.ID, &shop.CreatedAt, &shop.UpdatedAt,
	)
	return mapError(err, "upserting shop")
}

// GetShopToken returns the stored access token for a shop domain.
func (s *PostgresStore) GetShopToken(
	ctx context.Context,
	shopDomain string,
) (string, error) {
	var token string
	err := s.pool.QueryRow(ctx, queryGetShopToken, shopDomain).Scan(&token)
	if err != nil {
		return "", mapError(err, "looking up shop token")
	}
	return token, nil
}

// InsertItem persists a new intake item and fills in its generated
// id and timestamps.
func (s *PostgresStore) InsertItem(ctx context.Context, item *domain.Item) error {
	args := pgx.NamedArgs{
		"title":       item.Title,
		"sku":         item.SKU,
		"brand":       item.Brand,
		"category":    item.Category,
		"condition":   item.Condition,
		"price_cents": item.PriceCents,
		"notes":       item.Notes,
		"location":    item.Location,
		"vendor":      item.Vendor,
		"tags":        item.Tags,
	}

	err := s.pool.QueryRow(ctx, queryInsertItem, args).Scan(
		&item.ID, &item.CreatedAt, &item.UpdatedAt,
	)
	return mapError(err, "inserting item")
}

// GetItem retrieves an item by its UUID.
func (s *PostgresStore) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	item := &domain.Item{}
	if err := scanItem(s.pool.QueryRow(ctx, queryGetItem, id), item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListItems queries items with optional filters, returning results and
// total count.
func (s *PostgresStore) ListItems(
	ctx context.Context,
	opts *ItemQuery,
) ([]domain.Item, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, mapError(err, "counting items")
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, mapError(err, "listing items")
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var item domain.Item
		if err := scanItem(rows, &item); err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, mapError(err, "iterating items")
	}

	return items, total, nil
}

// SetItemProduct records the catalog product created for an item.
func (s *PostgresStore) SetItemProduct(
	ctx context.Context,
	id string,
	productID int64,
) error {
	tag, err := s.pool.Exec(ctx, querySetItemProduct, id, productID)
	if err != nil {
		return mapError(err, "setting item product")
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetSettings returns a shop's stored preferences.
func (s *PostgresStore) GetSettings(
	ctx context.Context,
	shopDomain string,
) (*domain.ShopSettings, error) {
	settings := &domain.ShopSettings{}
	err := s.pool.QueryRow(ctx, queryGetSettings, shopDomain).Scan(
		&settings.ShopDomain, &settings.DefaultLocationID,
	)
	if err != nil {
		return nil, mapError(err, "loading settings")
	}
	return settings, nil
}

// PutSettings upserts a shop's preferences.
func (s *PostgresStore) PutSettings(
	ctx context.Context,
	settings *domain.ShopSettings,
) error {
	args := pgx.NamedArgs{
		"shop_domain":         settings.ShopDomain,
		"default_location_id": settings.DefaultLocationID,
	}
	_, err := s.pool.Exec(ctx, queryPutSettings, args)
	return mapError(err, "saving settings")
}

// rowScanner covers pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner, item *domain.Item) error {
	err := row.Scan(
		&item.ID, &item.Title, &item.SKU, &item.Brand,
		&item.Category, &item.Condition,
		&item.PriceCents, &item.Notes, &item.Location,
		&item.Vendor, &item.Tags,
		&item.ProductID, &item.PushedAt, &item.CreatedAt, &item.UpdatedAt,
	)
	return mapError(err, "scanning item")
}

// mapError folds driver errors into the package's sentinel taxonomy.
func mapError(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable {
		return fmt.Errorf("%w: %s: %s", ErrSchemaMissing, op, pgErr.Message)
	}

	return fmt.Errorf("%s: %w", op, err)
}
