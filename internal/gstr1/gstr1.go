// Package gstr1 builds GSTR-1 style statutory summaries from order
// history. It reuses the same tax breakdown primitive as cart pricing
// so the two paths can never drift apart.
package gstr1

import (
	"fmt"
	"time"

	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/tax"
)

// DefaultHSNCode stands in when a product record carries no HSN code.
const DefaultHSNCode = "9983"

// Place-of-supply labels rendered on the statutory export.
const (
	PlaceOfSupplyHome    = "Karnataka"
	PlaceOfSupplyOutside = "Outside Karnataka"
)

// OrderInput is the slice of a persisted order the report builder
// consumes. CustomerName is the profile name when one exists; the
// builder synthesizes a placeholder otherwise.
type OrderInput struct {
	OrderID         string
	InvoiceNumber   string
	OrderDate       time.Time
	ShippingAddress string
	CustomerName    *string
	PaymentMethod   string
	StoredTotal     float64
	Items           []OrderItemInput
}

// OrderItemInput is one sold line as persisted on the order.
// Price is the tax-inclusive unit price actually charged.
type OrderItemInput struct {
	ProductName   string
	HSNCode       *string
	GSTPercentage *float64
	Price         float64
	Quantity      int32
}

// Item is a per-line statutory breakdown. Exactly one of {CGST, SGST}
// or {IGST} is populated, mirroring tax.Breakdown.
type Item struct {
	Description   string   `json:"description"`
	HSNCode       string   `json:"hsn_code"`
	Quantity      int32    `json:"quantity"`
	GSTRate       float64  `json:"gst_rate"`
	TaxableValue  float64  `json:"taxable_value"`
	CGST          *float64 `json:"cgst,omitempty"`
	SGST          *float64 `json:"sgst,omitempty"`
	IGST          *float64 `json:"igst,omitempty"`
	TotalValue    float64  `json:"total_value"`
}

// Invoice is the per-order statutory record.
//
// InvoiceValue is recomputed from the items; when the stored order
// total exceeds it, the difference is carried as OtherCharges (for
// example a COD surcharge) so the export still reconciles against the
// stored total, which remains the source of truth.
type Invoice struct {
	OrderID         string  `json:"order_id"`
	InvoiceNumber   string  `json:"invoice_number"`
	InvoiceDate     string  `json:"invoice_date"`
	CustomerName    string  `json:"customer_name"`
	PlaceOfSupply   string  `json:"place_of_supply"`
	TaxableValue    float64 `json:"taxable_value"`
	TaxAmount       float64 `json:"tax_amount"`
	InvoiceValue    float64 `json:"invoice_value"`
	OtherCharges    float64 `json:"other_charges"`
	OtherChargeNote string  `json:"other_charge_note,omitempty"`
	Items           []Item  `json:"items"`
}

// Summary aggregates invoices for one reporting period.
// TotalTaxAmount == TotalCGST + TotalSGST + TotalIGST and
// TotalInvoiceValue == TotalTaxableValue + TotalTaxAmount by
// construction.
type Summary struct {
	InvoiceCount      int     `json:"invoice_count"`
	TotalTaxableValue float64 `json:"total_taxable_value"`
	TotalCGST         float64 `json:"total_cgst"`
	TotalSGST         float64 `json:"total_sgst"`
	TotalIGST         float64 `json:"total_igst"`
	TotalTaxAmount    float64 `json:"total_tax_amount"`
	TotalInvoiceValue float64 `json:"total_invoice_value"`
}

// Builder turns order history into statutory invoices and summaries.
type Builder struct {
	calc tax.Calculator
}

// NewBuilder creates a report builder over the shared tax calculator.
func NewBuilder(calc tax.Calculator) *Builder {
	return &Builder{calc: calc}
}

// BuildInvoice derives the statutory record for one order. Every item
// is passed through the same inclusive-extraction breakdown as cart
// pricing, at the item's own price * quantity and its own GST rate.
// Missing optional fields degrade to documented defaults; nothing here
// fails.
func (b *Builder) BuildInvoice(order OrderInput) Invoice {
	inv := Invoice{
		OrderID:       order.OrderID,
		InvoiceNumber: order.InvoiceNumber,
		InvoiceDate:   order.OrderDate.Format("02-01-2006"),
		CustomerName:  customerName(order),
		PlaceOfSupply: placeOfSupply(order.ShippingAddress),
		Items:         make([]Item, 0, len(order.Items)),
	}

	for _, it := range order.Items {
		rate := tax.RateOrDefault(it.GSTPercentage)
		lineTotal := it.Price * float64(it.Quantity)
		bd := b.calc.CalculateBreakdown(lineTotal, rate, order.ShippingAddress)

		hsn := DefaultHSNCode
		if it.HSNCode != nil && *it.HSNCode != "" {
			hsn = *it.HSNCode
		}

		inv.Items = append(inv.Items, Item{
			Description:  it.ProductName,
			HSNCode:      hsn,
			Quantity:     it.Quantity,
			GSTRate:      rate,
			TaxableValue: bd.TaxableAmount,
			CGST:         bd.CGST,
			SGST:         bd.SGST,
			IGST:         bd.IGST,
			TotalValue:   lineTotal,
		})

		inv.TaxableValue += bd.TaxableAmount
		inv.TaxAmount += bd.TotalTax
	}

	inv.InvoiceValue = inv.TaxableValue + inv.TaxAmount

	// A stored total above the recomputed item total is an additional
	// charge collected at checkout, attributed by payment method.
	if extra := order.StoredTotal - lineSum(inv.Items); extra > 0 {
		inv.OtherCharges = extra
		if order.PaymentMethod == "cod" {
			inv.OtherChargeNote = "COD charges"
		} else {
			inv.OtherChargeNote = "Other charges"
		}
	}

	return inv
}

// BuildInvoices maps a batch of orders in input order.
func (b *Builder) BuildInvoices(orders []OrderInput) []Invoice {
	invoices := make([]Invoice, len(orders))
	for i, order := range orders {
		invoices[i] = b.BuildInvoice(order)
	}
	return invoices
}

// Aggregate accumulates a period summary across invoices. Items are
// walked in list order so repeated aggregation of the same batch
// produces identical floats.
func Aggregate(invoices []Invoice) Summary {
	s := Summary{InvoiceCount: len(invoices)}

	for _, inv := range invoices {
		for _, it := range inv.Items {
			s.TotalTaxableValue += it.TaxableValue
			if it.CGST != nil {
				s.TotalCGST += *it.CGST
			}
			if it.SGST != nil {
				s.TotalSGST += *it.SGST
			}
			if it.IGST != nil {
				s.TotalIGST += *it.IGST
			}
		}
	}

	s.TotalTaxAmount = s.TotalCGST + s.TotalSGST + s.TotalIGST
	s.TotalInvoiceValue = s.TotalTaxableValue + s.TotalTaxAmount
	return s
}

func lineSum(items []Item) float64 {
	var sum float64
	for _, it := range items {
		sum += it.TotalValue
	}
	return sum
}

func customerName(order OrderInput) string {
	if order.CustomerName != nil && *order.CustomerName != "" {
		return *order.CustomerName
	}
	id := order.OrderID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("Customer %s", id)
}

func placeOfSupply(shippingAddress string) string {
	if tax.ClassifyJurisdiction(shippingAddress) == tax.IntraState {
		return PlaceOfSupplyHome
	}
	return PlaceOfSupplyOutside
}
