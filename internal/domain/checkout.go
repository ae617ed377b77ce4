package domain

import (
	"context"
	"time"

	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/pricing"
)

// Checkout-related domain errors.
var (
	ErrOrderNotFound = &Error{Code: ENOTFOUND, Message: "Order not found"}
	ErrEmptyOrder    = &Error{Code: EINVALID, Message: "Order has no items"}
)

// QuoteItem pairs a catalog product ID with a quantity for quoting.
type QuoteItem struct {
	ProductID string
	Quantity  int32
}

// Quote is a priced cart: per-line results plus the order totals that
// would be persisted if the cart converted to an order.
type Quote struct {
	Lines         []pricing.PriceResult
	Totals        pricing.OrderTotals
	DeliveryLabel string
}

// PlaceOrderParams contains parameters for converting a quote into a
// persisted order.
type PlaceOrderParams struct {
	UserID          string
	Items           []QuoteItem
	ShippingAddress string
	PaymentMethod   string
}

// Order is a persisted order with its stored totals. GrandTotal is the
// source of truth for later invoice reconciliation.
type Order struct {
	ID              string
	OrderNumber     string
	UserID          string
	ShippingAddress string
	PaymentMethod   string
	Totals          pricing.OrderTotals
	Status          string
	CreatedAt       time.Time
}

// OrderItem is one sold line as stored on an order. Price is the
// tax-inclusive unit price actually charged (discount applied).
type OrderItem struct {
	ID            string
	OrderID       string
	ProductID     string
	ProductName   string
	HSNCode       *string
	GSTPercentage *float64
	Price         float64
	Quantity      int32
}

// OrderDetail aggregates an order with its items.
type OrderDetail struct {
	Order Order
	Items []OrderItem
}

// CheckoutService prices carts and persists orders.
type CheckoutService interface {
	// QuoteProductPrice prices a single product line for display.
	QuoteProductPrice(ctx context.Context, productID string, quantity int32, shippingAddress string) (*pricing.PriceResult, error)

	// QuoteOrderTotals prices a cart with delivery resolved through the
	// shipping provider.
	QuoteOrderTotals(ctx context.Context, items []QuoteItem, shippingAddress string) (*Quote, error)

	// PlaceOrder persists an order with its computed totals. The stored
	// grand total becomes the reconciliation source of truth.
	PlaceOrder(ctx context.Context, params PlaceOrderParams) (*OrderDetail, error)

	// GetOrder retrieves an order with items by ID.
	GetOrder(ctx context.Context, orderID string) (*OrderDetail, error)
}
