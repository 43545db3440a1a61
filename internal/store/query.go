package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByCreated = "created_at"
	orderByPrice   = "price"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByCreated: "created_at DESC",
	orderByPrice:   "price_cents ASC NULLS LAST",
}

const defaultOrderBy = "created_at DESC"

const baseItemsSelect = `SELECT id, title, COALESCE(sku, ''), COALESCE(brand, ''),
	COALESCE(category, ''), COALESCE(condition, ''),
	price_cents, COALESCE(notes, ''), COALESCE(location, ''),
	COALESCE(vendor, ''), COALESCE(tags, '{}'),
	product_id, pushed_at, created_at, updated_at
FROM inventory_items`

const countItemsSelect = "SELECT COUNT(*) FROM inventory_items"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for an
// item query. It returns two SQL strings (data and count) plus the
// positional parameters shared by both.
func (q *ItemQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.Vendor != nil {
		conditions = append(conditions, fmt.Sprintf("vendor = $%d", paramIdx))
		args = append(args, *q.Vendor)
		paramIdx++
	}

	if q.Location != nil {
		conditions = append(conditions, fmt.Sprintf("location = $%d", paramIdx))
		args = append(args, *q.Location)
		paramIdx++
	}

	if q.Published != nil {
		if *q.Published {
			conditions = append(conditions, "product_id IS NOT NULL")
		} else {
			conditions = append(conditions, "product_id IS NULL")
		}
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultOrderBy
	if col, ok := validOrderBy[q.OrderBy]; ok {
		orderClause = col
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseItemsSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countItemsSelect + whereClause

	return dataSQL, countSQL, args
}
