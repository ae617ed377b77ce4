package tax

// GSTCalculator computes GST splits under India's dual-GST regime.
// It is stateless and safe for concurrent use.
type GSTCalculator struct{}

// NewGSTCalculator creates a new GST calculator.
func NewGSTCalculator() Calculator {
	return &GSTCalculator{}
}

// CalculateBreakdown treats amount as tax-inclusive and back-computes
// the taxable value: taxable = amount / (1 + rate). Degenerate inputs
// (zero amount, zero rate) yield a zero-tax breakdown, not an error.
func (c *GSTCalculator) CalculateBreakdown(amount, gstPercentage float64, shippingAddress string) Breakdown {
	rate := gstPercentage / 100
	taxable := amount / (1 + rate)
	return split(taxable, amount-taxable, shippingAddress)
}

// CalculateOnExclusiveAmount treats amount as tax-exclusive and adds
// tax on top: tax = amount * rate. The taxable value is the input
// unchanged. This is a distinct operation from CalculateBreakdown on
// purpose; callers pick the direction by name, not by flag.
func (c *GSTCalculator) CalculateOnExclusiveAmount(amount, gstPercentage float64, shippingAddress string) Breakdown {
	rate := gstPercentage / 100
	return split(amount, amount*rate, shippingAddress)
}

// split assigns the computed tax to CGST+SGST or IGST based on the
// shipping address. IntraState halves the tax exactly.
func split(taxable, totalTax float64, shippingAddress string) Breakdown {
	b := Breakdown{
		TaxableAmount: taxable,
		TotalTax:      totalTax,
		Jurisdiction:  ClassifyJurisdiction(shippingAddress),
	}

	if b.Jurisdiction == IntraState {
		half := totalTax / 2
		cgst, sgst := half, half
		b.CGST = &cgst
		b.SGST = &sgst
		return b
	}

	igst := totalTax
	b.IGST = &igst
	return b
}
