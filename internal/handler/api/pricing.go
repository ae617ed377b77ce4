package api

import (
	"net/http"

	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/domain"
)

// ProductQuoteRequest is the body of POST /api/v1/pricing/product.
type ProductQuoteRequest struct {
	ProductID       string `json:"product_id" validate:"required,uuid4"`
	Quantity        int32  `json:"quantity" validate:"required,gt=0"`
	ShippingAddress string `json:"shipping_address" validate:"required"`
}

// QuoteProductPrice handles POST /api/v1/pricing/product
func (h *Handler) QuoteProductPrice(w http.ResponseWriter, r *http.Request) {
	var req ProductQuoteRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.checkout.QuoteProductPrice(r.Context(), req.ProductID, req.Quantity, req.ShippingAddress)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, result)
}

// OrderQuoteRequest is the body of POST /api/v1/pricing/order.
type OrderQuoteRequest struct {
	Items           []OrderQuoteItem `json:"items" validate:"required,min=1,dive"`
	ShippingAddress string           `json:"shipping_address" validate:"required"`
}

// OrderQuoteItem is one cart line in an order quote.
type OrderQuoteItem struct {
	ProductID string `json:"product_id" validate:"required,uuid4"`
	Quantity  int32  `json:"quantity" validate:"required,gt=0"`
}

// QuoteOrderTotals handles POST /api/v1/pricing/order
func (h *Handler) QuoteOrderTotals(w http.ResponseWriter, r *http.Request) {
	var req OrderQuoteRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	items := make([]domain.QuoteItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = domain.QuoteItem{ProductID: it.ProductID, Quantity: it.Quantity}
	}

	quote, err := h.checkout.QuoteOrderTotals(r.Context(), items, req.ShippingAddress)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, quote)
}
