package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createOrder = `
INSERT INTO orders (
	order_number, user_id, shipping_address, payment_method,
	total_base_amount, total_discount_amount, total_taxable_amount,
	total_tax_amount, total_final_price, delivery_price, grand_total, status
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id, order_number, user_id, shipping_address, payment_method,
	total_base_amount, total_discount_amount, total_taxable_amount,
	total_tax_amount, total_final_price, delivery_price, grand_total, status, created_at
`

// CreateOrder inserts an order with its computed totals.
func (q *Queries) CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error) {
	row := q.db.QueryRow(ctx, createOrder,
		arg.OrderNumber,
		arg.UserID,
		arg.ShippingAddress,
		arg.PaymentMethod,
		arg.TotalBaseAmount,
		arg.TotalDiscountAmount,
		arg.TotalTaxableAmount,
		arg.TotalTaxAmount,
		arg.TotalFinalPrice,
		arg.DeliveryPrice,
		arg.GrandTotal,
		arg.Status,
	)
	var o Order
	err := scanOrder(row, &o)
	return o, err
}

const createOrderItem = `
INSERT INTO order_items (
	order_id, product_id, product_name, hsn_code, gst_percentage, price, quantity
) VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, order_id, product_id, product_name, hsn_code, gst_percentage, price, quantity
`

// CreateOrderItem inserts one sold line, freezing the product's GST
// attributes at purchase time.
func (q *Queries) CreateOrderItem(ctx context.Context, arg CreateOrderItemParams) (OrderItem, error) {
	row := q.db.QueryRow(ctx, createOrderItem,
		arg.OrderID,
		arg.ProductID,
		arg.ProductName,
		arg.HsnCode,
		arg.GstPercentage,
		arg.Price,
		arg.Quantity,
	)
	var it OrderItem
	err := row.Scan(
		&it.ID,
		&it.OrderID,
		&it.ProductID,
		&it.ProductName,
		&it.HsnCode,
		&it.GstPercentage,
		&it.Price,
		&it.Quantity,
	)
	return it, err
}

const getOrder = `
SELECT id, order_number, user_id, shipping_address, payment_method,
	total_base_amount, total_discount_amount, total_taxable_amount,
	total_tax_amount, total_final_price, delivery_price, grand_total, status, created_at
FROM orders
WHERE id = $1
`

// GetOrder retrieves a single order by ID.
func (q *Queries) GetOrder(ctx context.Context, id pgtype.UUID) (Order, error) {
	row := q.db.QueryRow(ctx, getOrder, id)
	var o Order
	err := scanOrder(row, &o)
	return o, err
}

const getOrderItems = `
SELECT id, order_id, product_id, product_name, hsn_code, gst_percentage, price, quantity
FROM order_items
WHERE order_id = $1
ORDER BY id
`

// GetOrderItems returns the items of an order in insertion order.
func (q *Queries) GetOrderItems(ctx context.Context, orderID pgtype.UUID) ([]OrderItem, error) {
	rows, err := q.db.Query(ctx, getOrderItems, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OrderItem
	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(
			&it.ID,
			&it.OrderID,
			&it.ProductID,
			&it.ProductName,
			&it.HsnCode,
			&it.GstPercentage,
			&it.Price,
			&it.Quantity,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

const listOrdersInPeriod = `
SELECT o.id, o.order_number, o.user_id, o.shipping_address, o.payment_method,
	o.total_base_amount, o.total_discount_amount, o.total_taxable_amount,
	o.total_tax_amount, o.total_final_price, o.delivery_price, o.grand_total, o.status, o.created_at,
	p.full_name
FROM orders o
LEFT JOIN profiles p ON p.user_id = o.user_id
WHERE o.created_at >= $1 AND o.created_at <= $2
ORDER BY o.created_at, o.id
`

// ListOrdersInPeriod returns orders created within the bounds, joined
// with the customer profile name, oldest first. The stable ordering
// keeps statutory aggregation reproducible.
func (q *Queries) ListOrdersInPeriod(ctx context.Context, arg ListOrdersInPeriodParams) ([]ListOrdersInPeriodRow, error) {
	rows, err := q.db.Query(ctx, listOrdersInPeriod, arg.PeriodStart, arg.PeriodEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ListOrdersInPeriodRow
	for rows.Next() {
		var r ListOrdersInPeriodRow
		if err := rows.Scan(
			&r.Order.ID,
			&r.Order.OrderNumber,
			&r.Order.UserID,
			&r.Order.ShippingAddress,
			&r.Order.PaymentMethod,
			&r.Order.TotalBaseAmount,
			&r.Order.TotalDiscountAmount,
			&r.Order.TotalTaxableAmount,
			&r.Order.TotalTaxAmount,
			&r.Order.TotalFinalPrice,
			&r.Order.DeliveryPrice,
			&r.Order.GrandTotal,
			&r.Order.Status,
			&r.Order.CreatedAt,
			&r.CustomerName,
		); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

type orderScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row orderScanner, o *Order) error {
	return row.Scan(
		&o.ID,
		&o.OrderNumber,
		&o.UserID,
		&o.ShippingAddress,
		&o.PaymentMethod,
		&o.TotalBaseAmount,
		&o.TotalDiscountAmount,
		&o.TotalTaxableAmount,
		&o.TotalTaxAmount,
		&o.TotalFinalPrice,
		&o.DeliveryPrice,
		&o.GrandTotal,
		&o.Status,
		&o.CreatedAt,
	)
}
