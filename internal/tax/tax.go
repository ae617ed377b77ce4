// Package tax implements the GST breakdown calculation used by cart
// pricing and statutory reporting. All amounts are rupee values held in
// float64; rounding for display is the caller's concern.
package tax

// DefaultGSTRate is the GST percentage applied when a product record
// carries no rate of its own.
const DefaultGSTRate = 18.0

// Calculator defines the interface for GST breakdown calculation.
// Implementations: GSTCalculator, MockCalculator.
type Calculator interface {
	// CalculateBreakdown extracts tax from a tax-inclusive amount.
	// The shipping address selects CGST+SGST vs IGST.
	CalculateBreakdown(amount, gstPercentage float64, shippingAddress string) Breakdown

	// CalculateOnExclusiveAmount adds tax on top of a tax-exclusive
	// amount. Same jurisdiction logic as CalculateBreakdown.
	CalculateOnExclusiveAmount(amount, gstPercentage float64, shippingAddress string) Breakdown
}

// Breakdown is the canonical taxable-value/tax split for one amount.
// Exactly one of {CGST, SGST} or {IGST} is populated, never both.
type Breakdown struct {
	TaxableAmount float64      `json:"taxable_amount"`
	TotalTax      float64      `json:"total_tax"`
	CGST          *float64     `json:"cgst,omitempty"`
	SGST          *float64     `json:"sgst,omitempty"`
	IGST          *float64     `json:"igst,omitempty"`
	Jurisdiction  Jurisdiction `json:"jurisdiction"`
}

// RateOrDefault resolves an optional product GST percentage.
func RateOrDefault(rate *float64) float64 {
	if rate == nil {
		return DefaultGSTRate
	}
	return *rate
}
