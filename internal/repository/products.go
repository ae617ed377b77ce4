package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getProduct = `
SELECT id, name, slug, price, discounted_price, gst_percentage, hsn_code, is_active, created_at, updated_at
FROM products
WHERE id = $1
`

// GetProduct retrieves a product by ID (includes inactive).
func (q *Queries) GetProduct(ctx context.Context, id pgtype.UUID) (Product, error) {
	row := q.db.QueryRow(ctx, getProduct, id)
	var p Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Slug,
		&p.Price,
		&p.DiscountedPrice,
		&p.GstPercentage,
		&p.HsnCode,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

const listActiveProducts = `
SELECT id, name, slug, price, discounted_price, gst_percentage, hsn_code, is_active, created_at, updated_at
FROM products
WHERE is_active = true
ORDER BY name
`

// ListActiveProducts returns all products available for sale.
func (q *Queries) ListActiveProducts(ctx context.Context) ([]Product, error) {
	rows, err := q.db.Query(ctx, listActiveProducts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Slug,
			&p.Price,
			&p.DiscountedPrice,
			&p.GstPercentage,
			&p.HsnCode,
			&p.IsActive,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}
