package api

import (
	"net/http"

	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/domain"
)

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	UserID          string           `json:"user_id" validate:"required,uuid4"`
	Items           []OrderQuoteItem `json:"items" validate:"required,min=1,dive"`
	ShippingAddress string           `json:"shipping_address" validate:"required"`
	PaymentMethod   string           `json:"payment_method" validate:"required,oneof=cod razorpay"`
}

// PlaceOrder handles POST /api/v1/orders
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	items := make([]domain.QuoteItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = domain.QuoteItem{ProductID: it.ProductID, Quantity: it.Quantity}
	}

	detail, err := h.checkout.PlaceOrder(r.Context(), domain.PlaceOrderParams{
		UserID:          req.UserID,
		Items:           items,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, detail)
}

// GetOrder handles GET /api/v1/orders/{id}
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	detail, err := h.checkout.GetOrder(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, detail)
}
