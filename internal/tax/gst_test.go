package tax_test

import (
	"math"
	"testing"

	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/tax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-6

// Test_GSTCalculator_InclusiveExtraction validates the canonical
// example: a tax-inclusive 118.00 at 18% GST extracts a taxable value
// of 100.00 and 18.00 of tax, split 9/9 for a Karnataka delivery.
func Test_GSTCalculator_InclusiveExtraction(t *testing.T) {
	calc := tax.NewGSTCalculator()

	b := calc.CalculateBreakdown(118, 18, "12 MG Road, Bengaluru, Karnataka 560001")

	assert.InDelta(t, 100.0, b.TaxableAmount, tolerance, "118 / 1.18 = 100")
	assert.InDelta(t, 18.0, b.TotalTax, tolerance, "118 - 100 = 18")
	require.NotNil(t, b.CGST)
	require.NotNil(t, b.SGST)
	assert.Nil(t, b.IGST, "intra-state must not carry IGST")
	assert.InDelta(t, 9.0, *b.CGST, tolerance)
	assert.InDelta(t, 9.0, *b.SGST, tolerance)
	assert.Equal(t, tax.IntraState, b.Jurisdiction)
}

func Test_GSTCalculator_InterStateAssignsIGST(t *testing.T) {
	calc := tax.NewGSTCalculator()

	b := calc.CalculateBreakdown(236, 18, "123 Park St, Kolkata, West Bengal")

	require.NotNil(t, b.IGST)
	assert.Nil(t, b.CGST, "inter-state must not carry CGST")
	assert.Nil(t, b.SGST, "inter-state must not carry SGST")
	assert.InDelta(t, 200.0, b.TaxableAmount, tolerance, "236 / 1.18 = 200")
	assert.InDelta(t, 36.0, *b.IGST, tolerance, "the whole tax goes to IGST")
	assert.Equal(t, tax.InterState, b.Jurisdiction)
}

// Test_GSTCalculator_Reconciliation checks that taxable + tax always
// reconstructs the inclusive input across a spread of rates.
func Test_GSTCalculator_Reconciliation(t *testing.T) {
	calc := tax.NewGSTCalculator()

	tests := []struct {
		name   string
		amount float64
		rate   float64
	}{
		{"standard rate", 118, 18},
		{"essential goods rate", 105, 5},
		{"luxury rate", 1280, 28},
		{"zero rated", 500, 0},
		{"fractional amount", 99.99, 12},
		{"large amount", 1234567.89, 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := calc.CalculateBreakdown(tt.amount, tt.rate, "Mumbai, Maharashtra")
			assert.InDelta(t, tt.amount, b.TaxableAmount+b.TotalTax, tolerance,
				"taxable + tax must reconcile to the inclusive input")
		})
	}
}

// Test_GSTCalculator_HalfSplitExactness validates that intra-state tax
// halves are bit-identical, not merely close.
func Test_GSTCalculator_HalfSplitExactness(t *testing.T) {
	calc := tax.NewGSTCalculator()

	for _, amount := range []float64{118, 236, 99.99, 0.01, 75000} {
		b := calc.CalculateBreakdown(amount, 18, "Bangalore")
		require.NotNil(t, b.CGST)
		require.NotNil(t, b.SGST)
		assert.Equal(t, *b.CGST, *b.SGST, "CGST and SGST must be exactly equal")
		assert.Equal(t, b.TotalTax/2, *b.CGST, "each half is exactly totalTax / 2")
	}
}

// Test_GSTCalculator_RoundTrip validates the inclusive/exclusive pair:
// extracting tax and then re-adding it on the taxable value must land
// on the same tax amount.
func Test_GSTCalculator_RoundTrip(t *testing.T) {
	calc := tax.NewGSTCalculator()

	tests := []struct {
		name    string
		amount  float64
		rate    float64
		address string
	}{
		{"intra-state 18%", 118, 18, "Bengaluru"},
		{"inter-state 18%", 590, 18, "Chennai, Tamil Nadu"},
		{"intra-state 5%", 210, 5, "Mysuru, Karnataka"},
		{"inter-state 28%", 6400, 28, "Delhi"},
		{"zero rate", 100, 0, "Hyderabad, Telangana"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inclusive := calc.CalculateBreakdown(tt.amount, tt.rate, tt.address)
			forward := calc.CalculateOnExclusiveAmount(inclusive.TaxableAmount, tt.rate, tt.address)

			assert.InDelta(t, inclusive.TotalTax, forward.TotalTax, tolerance,
				"forward tax on the extracted taxable value must match the extracted tax")
			assert.Equal(t, inclusive.TaxableAmount, forward.TaxableAmount,
				"the exclusive variant must not change the taxable value")
		})
	}
}

func Test_GSTCalculator_ExclusiveAddsOnTop(t *testing.T) {
	calc := tax.NewGSTCalculator()

	b := calc.CalculateOnExclusiveAmount(100, 18, "Pune, Maharashtra")

	assert.Equal(t, 100.0, b.TaxableAmount)
	assert.InDelta(t, 18.0, b.TotalTax, tolerance, "100 * 0.18 = 18")
	require.NotNil(t, b.IGST)
	assert.InDelta(t, 18.0, *b.IGST, tolerance)
}

// Test_GSTCalculator_DegenerateInputs: zero amount and zero rate are
// valid inputs that produce zero-valued splits, never an error.
func Test_GSTCalculator_DegenerateInputs(t *testing.T) {
	calc := tax.NewGSTCalculator()

	t.Run("zero amount intra-state", func(t *testing.T) {
		b := calc.CalculateBreakdown(0, 18, "Bengaluru")
		assert.Zero(t, b.TaxableAmount)
		assert.Zero(t, b.TotalTax)
		require.NotNil(t, b.CGST)
		require.NotNil(t, b.SGST)
		assert.Zero(t, *b.CGST)
		assert.Zero(t, *b.SGST)
	})

	t.Run("zero rate inter-state", func(t *testing.T) {
		b := calc.CalculateBreakdown(250, 0, "Jaipur, Rajasthan")
		assert.Equal(t, 250.0, b.TaxableAmount, "zero rate means the whole amount is taxable value")
		assert.Zero(t, b.TotalTax)
		require.NotNil(t, b.IGST)
		assert.Zero(t, *b.IGST)
	})

	t.Run("zero amount zero rate", func(t *testing.T) {
		b := calc.CalculateOnExclusiveAmount(0, 0, "")
		assert.Zero(t, b.TaxableAmount)
		assert.Zero(t, b.TotalTax)
	})
}

func Test_RateOrDefault(t *testing.T) {
	assert.Equal(t, 18.0, tax.RateOrDefault(nil), "missing rate defaults to 18")

	five := 5.0
	assert.Equal(t, 5.0, tax.RateOrDefault(&five))

	zero := 0.0
	assert.Equal(t, 0.0, tax.RateOrDefault(&zero), "an explicit zero rate is honored, not defaulted")
}

// Test_GSTCalculator_NoDrift: repeated computation on identical input
// must be bit-for-bit reproducible.
func Test_GSTCalculator_NoDrift(t *testing.T) {
	calc := tax.NewGSTCalculator()

	first := calc.CalculateBreakdown(1333.37, 18, "Hubli, Karnataka")
	for i := 0; i < 100; i++ {
		again := calc.CalculateBreakdown(1333.37, 18, "Hubli, Karnataka")
		assert.Equal(t, first.TaxableAmount, again.TaxableAmount)
		assert.Equal(t, first.TotalTax, again.TotalTax)
	}
	assert.False(t, math.IsNaN(first.TotalTax))
}
