// Package routes wires handlers onto the router.
package routes

import (
	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/handler/api"
	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/router"
)

// APIDeps contains dependencies for the JSON API routes.
type APIDeps struct {
	Handler *api.Handler
}

// RegisterAPIRoutes registers the storefront pricing and statutory
// reporting endpoints.
func RegisterAPIRoutes(r *router.Router, deps APIDeps) {
	h := deps.Handler

	// Catalog
	r.Get("/api/v1/products", h.ListProducts)
	r.Get("/api/v1/products/{id}", h.GetProduct)

	// Pricing
	r.Post("/api/v1/pricing/product", h.QuoteProductPrice)
	r.Post("/api/v1/pricing/order", h.QuoteOrderTotals)

	// Orders
	r.Post("/api/v1/orders", h.PlaceOrder)
	r.Get("/api/v1/orders/{id}", h.GetOrder)

	// Statutory reporting
	r.Get("/api/v1/reports/gstr1", h.GenerateGSTR1)
}
