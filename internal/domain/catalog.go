package domain

import (
	"context"

	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/pricing"
)

// Catalog-related domain errors.
var (
	ErrProductNotFound = &Error{Code: ENOTFOUND, Message: "Product not found"}
	ErrProductInactive = &Error{Code: EINVALID, Message: "Product is not available for sale"}
)

// Product represents a sellable catalog entry. Price is the tax
// inclusive list price in rupees; DiscountedPrice, when set, is the
// price actually charged. The admin back-office is responsible for
// keeping DiscountedPrice below Price; pricing does not re-check it.
type Product struct {
	ID              string
	Name            string
	Slug            string
	Price           float64
	DiscountedPrice *float64
	GSTPercentage   *float64
	HSNCode         *string
	IsActive        bool
}

// Snapshot returns the pricing-engine view of the product.
func (p Product) Snapshot() pricing.ProductSnapshot {
	return pricing.ProductSnapshot{
		Price:           p.Price,
		DiscountedPrice: p.DiscountedPrice,
		GSTPercentage:   p.GSTPercentage,
		HSNCode:         p.HSNCode,
	}
}

// CatalogService provides read access to the product catalog.
type CatalogService interface {
	// GetProduct retrieves a product by ID (includes inactive).
	GetProduct(ctx context.Context, productID string) (*Product, error)

	// ListProducts returns all active products.
	ListProducts(ctx context.Context) ([]Product, error)
}
