// Package pricing aggregates per-line GST breakdowns into order-level
// totals. It is a pure computation layer: product snapshots come in,
// totals come out, nothing is validated or persisted here.
package pricing

import (
	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/tax"
)

// ProductSnapshot is the slice of a product record the pricing engine
// needs. Prices are tax-inclusive rupee amounts. A present
// DiscountedPrice is authoritative regardless of its relationship to
// Price; the catalog collaborator validates discounts upstream.
type ProductSnapshot struct {
	Price           float64  `json:"price"`
	DiscountedPrice *float64 `json:"discounted_price,omitempty"`
	GSTPercentage   *float64 `json:"gst_percentage,omitempty"`
	HSNCode         *string  `json:"hsn_code,omitempty"`
}

// LineItem pairs a product snapshot with a quantity.
type LineItem struct {
	Product  ProductSnapshot `json:"product"`
	Quantity int32           `json:"quantity"`
}

// PriceResult is the computed price for one product line.
// BasePrice, DiscountAmount and DiscountedPrice are per-unit values;
// TaxableAmount, TaxAmount and FinalPrice cover the whole line
// (quantity applied). FinalPrice is always tax-inclusive and equals
// TaxableAmount + TaxAmount.
type PriceResult struct {
	BasePrice       float64       `json:"base_price"`
	DiscountAmount  float64       `json:"discount_amount"`
	DiscountedPrice float64       `json:"discounted_price"`
	TaxableAmount   float64       `json:"taxable_amount"`
	TaxAmount       float64       `json:"tax_amount"`
	FinalPrice      float64       `json:"final_price"`
	GSTPercentage   float64       `json:"gst_percentage"`
	Breakdown       tax.Breakdown `json:"breakdown"`
}

// OrderTotals aggregates PriceResult values across an order's lines.
// GrandTotal == TotalFinalPrice + DeliveryPrice; delivery is tax-free
// in this model (the rate collaborator supplies it precomputed).
type OrderTotals struct {
	TotalBaseAmount     float64 `json:"total_base_amount"`
	TotalDiscountAmount float64 `json:"total_discount_amount"`
	TotalTaxableAmount  float64 `json:"total_taxable_amount"`
	TotalTaxAmount      float64 `json:"total_tax_amount"`
	TotalFinalPrice     float64 `json:"total_final_price"`
	DeliveryPrice       float64 `json:"delivery_price"`
	GrandTotal          float64 `json:"grand_total"`
}

// Aggregator computes line and order pricing on top of a shared tax
// calculator. Stateless; safe for concurrent use.
type Aggregator struct {
	calc tax.Calculator
}

// NewAggregator creates a pricing aggregator over the given calculator.
func NewAggregator(calc tax.Calculator) *Aggregator {
	return &Aggregator{calc: calc}
}

// CalculateProductPrice prices one product line. The discounted price,
// when present, always wins over the base price. Quantity is not
// validated: a zero or negative quantity propagates arithmetically
// rather than erroring, so callers that need rejection must do it at
// their own boundary.
func (a *Aggregator) CalculateProductPrice(p ProductSnapshot, quantity int32, shippingAddress string) PriceResult {
	effective := p.Price
	discount := 0.0
	if p.DiscountedPrice != nil {
		effective = *p.DiscountedPrice
		discount = p.Price - *p.DiscountedPrice
	}

	rate := tax.RateOrDefault(p.GSTPercentage)
	lineTotal := effective * float64(quantity)
	b := a.calc.CalculateBreakdown(lineTotal, rate, shippingAddress)

	return PriceResult{
		BasePrice:       p.Price,
		DiscountAmount:  discount,
		DiscountedPrice: effective,
		TaxableAmount:   b.TaxableAmount,
		TaxAmount:       b.TotalTax,
		FinalPrice:      lineTotal,
		GSTPercentage:   rate,
		Breakdown:       b,
	}
}

// CalculateOrderTotals prices every line with the shared shipping
// address and sums the components in list order. List-order summation
// keeps the floating-point result reproducible run to run; do not
// reorder. An empty item list yields all-zero totals.
func (a *Aggregator) CalculateOrderTotals(items []LineItem, shippingAddress string, deliveryPrice float64) OrderTotals {
	totals := OrderTotals{DeliveryPrice: deliveryPrice}

	for _, item := range items {
		r := a.CalculateProductPrice(item.Product, item.Quantity, shippingAddress)
		qty := float64(item.Quantity)

		totals.TotalBaseAmount += r.BasePrice * qty
		totals.TotalDiscountAmount += r.DiscountAmount * qty
		totals.TotalTaxableAmount += r.TaxableAmount
		totals.TotalTaxAmount += r.TaxAmount
		totals.TotalFinalPrice += r.FinalPrice
	}

	totals.GrandTotal = totals.TotalFinalPrice + deliveryPrice
	return totals
}
