// Package shipping resolves the delivery price charged on an order.
// The price it returns is tax-free in the pricing model; the tax engine
// adds nothing on top of it.
package shipping

import (
	"context"
)

// Provider defines the interface for delivery rate lookup.
// Implementations can integrate with courier aggregators; the flat-rate
// provider serves until then.
type Provider interface {
	// GetRate returns the delivery price for a destination and order value.
	GetRate(ctx context.Context, params RateParams) (Rate, error)
}

// RateParams contains parameters for resolving a delivery rate.
type RateParams struct {
	ShippingAddress string
	OrderValue      float64
}

// Rate is a resolved delivery price.
type Rate struct {
	ServiceName string
	Price       float64
}
