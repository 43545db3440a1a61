package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Shop queries.
const (
	queryUpsertShop = `
		INSERT INTO shops (shop_domain, access_token, created_at, updated_at)
		VALUES (@shop_domain, @access_token, now(), now())
		ON CONFLICT (shop_domain) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			updated_at = now()
		RETURNING id, created_at, updated_at`

	queryGetShopToken = `
		SELECT access_token
		FROM shops
		WHERE shop_domain = $1`
)

// Item queries.
const (
	queryInsertItem = `
		INSERT INTO inventory_items (
			title, sku, brand, category, condition,
			price_cents, notes, location, vendor, tags,
			created_at, updated_at
		) VALUES (
			@title, @sku, @brand, @category, @condition,
			@price_cents, @notes, @location, @vendor, @tags,
			now(), now()
		)
		RETURNING id, created_at, updated_at`

	queryGetItem = `
		SELECT id, title, COALESCE(sku, ''), COALESCE(brand, ''),
			COALESCE(category, ''), COALESCE(condition, ''),
			price_cents, COALESCE(notes, ''), COALESCE(location, ''),
			COALESCE(vendor, ''), COALESCE(tags, '{}'),
			product_id, pushed_at, created_at, updated_at
		FROM inventory_items
		WHERE id = $1`

	querySetItemProduct = `
		UPDATE inventory_items SET
			product_id = $2,
			pushed_at = now(),
			updated_at = now()
		WHERE id = $1`
)

// Settings queries.
const (
	queryGetSettings = `
		SELECT shop_domain, COALESCE(default_location_id, '')
		FROM shop_settings
		WHERE shop_domain = $1`

	queryPutSettings = `
		INSERT INTO shop_settings (shop_domain, default_location_id, updated_at)
		VALUES (@shop_domain, @default_location_id, now())
		ON CONFLICT (shop_domain) DO UPDATE SET
			default_location_id = EXCLUDED.default_location_id,
			updated_at = now()`
)
