package repository

import (
	"github.com/jackc/pgx/v5/pgtype"
)

// Product mirrors the products table. Monetary columns are
// double-precision rupee amounts; nullable columns map to pointers.
type Product struct {
	ID              pgtype.UUID
	Name            string
	Slug            string
	Price           float64
	DiscountedPrice *float64
	GstPercentage   *float64
	HsnCode         *string
	IsActive        bool
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

// Order mirrors the orders table. GrandTotal is the stored source of
// truth for reconciliation.
type Order struct {
	ID                  pgtype.UUID
	OrderNumber         string
	UserID              pgtype.UUID
	ShippingAddress     string
	PaymentMethod       string
	TotalBaseAmount     float64
	TotalDiscountAmount float64
	TotalTaxableAmount  float64
	TotalTaxAmount      float64
	TotalFinalPrice     float64
	DeliveryPrice       float64
	GrandTotal          float64
	Status              string
	CreatedAt           pgtype.Timestamptz
}

// OrderItem mirrors the order_items table. Price is the tax-inclusive
// unit price actually charged; GST attributes are frozen at purchase
// time so later catalog edits cannot change past invoices.
type OrderItem struct {
	ID            pgtype.UUID
	OrderID       pgtype.UUID
	ProductID     pgtype.UUID
	ProductName   string
	HsnCode       *string
	GstPercentage *float64
	Price         float64
	Quantity      int32
}

// Gstr1Export mirrors the gstr1_exports audit table.
type Gstr1Export struct {
	ID                pgtype.UUID
	PeriodStart       pgtype.Timestamptz
	PeriodEnd         pgtype.Timestamptz
	InvoiceCount      int32
	TotalTaxableValue float64
	TotalCgst         float64
	TotalSgst         float64
	TotalIgst         float64
	TotalTaxAmount    float64
	TotalInvoiceValue float64
	Breakdown         []byte
	CreatedAt         pgtype.Timestamptz
}

// CreateOrderParams contains the columns written on order insert.
type CreateOrderParams struct {
	OrderNumber         string
	UserID              pgtype.UUID
	ShippingAddress     string
	PaymentMethod       string
	TotalBaseAmount     float64
	TotalDiscountAmount float64
	TotalTaxableAmount  float64
	TotalTaxAmount      float64
	TotalFinalPrice     float64
	DeliveryPrice       float64
	GrandTotal          float64
	Status              string
}

// CreateOrderItemParams contains the columns written on item insert.
type CreateOrderItemParams struct {
	OrderID       pgtype.UUID
	ProductID     pgtype.UUID
	ProductName   string
	HsnCode       *string
	GstPercentage *float64
	Price         float64
	Quantity      int32
}

// ListOrdersInPeriodParams bounds the statutory export query.
type ListOrdersInPeriodParams struct {
	PeriodStart pgtype.Timestamptz
	PeriodEnd   pgtype.Timestamptz
}

// ListOrdersInPeriodRow is an order joined with the customer's profile
// name (null when the customer never filled a profile).
type ListOrdersInPeriodRow struct {
	Order        Order
	CustomerName *string
}

// CreateGstr1ExportParams contains the audit snapshot written after an
// export is generated.
type CreateGstr1ExportParams struct {
	PeriodStart       pgtype.Timestamptz
	PeriodEnd         pgtype.Timestamptz
	InvoiceCount      int32
	TotalTaxableValue float64
	TotalCgst         float64
	TotalSgst         float64
	TotalIgst         float64
	TotalTaxAmount    float64
	TotalInvoiceValue float64
	Breakdown         []byte
}
