package shipping

import (
	"context"
)

// FlatRateProvider charges a fixed delivery price, waived above a
// configurable order value. Zero FreeAbove means delivery is never
// free.
type FlatRateProvider struct {
	price     float64
	freeAbove float64
}

// NewFlatRateProvider creates a flat-rate delivery provider.
func NewFlatRateProvider(price, freeAbove float64) Provider {
	return &FlatRateProvider{price: price, freeAbove: freeAbove}
}

// GetRate returns the flat rate, or zero when the order value clears
// the free-delivery threshold.
func (p *FlatRateProvider) GetRate(ctx context.Context, params RateParams) (Rate, error) {
	if p.freeAbove > 0 && params.OrderValue >= p.freeAbove {
		return Rate{ServiceName: "Free Delivery", Price: 0}, nil
	}
	return Rate{ServiceName: "Standard Delivery", Price: p.price}, nil
}
