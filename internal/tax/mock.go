package tax

// MockCalculator is a test implementation of Calculator.
type MockCalculator struct {
	CalculateBreakdownFunc         func(amount, gstPercentage float64, shippingAddress string) Breakdown
	CalculateOnExclusiveAmountFunc func(amount, gstPercentage float64, shippingAddress string) Breakdown
}

// NewMockCalculator creates a mock that delegates to a real
// GSTCalculator unless a function field is set.
func NewMockCalculator() *MockCalculator {
	return &MockCalculator{}
}

// CalculateBreakdown delegates to the configured function or to the
// real implementation.
func (m *MockCalculator) CalculateBreakdown(amount, gstPercentage float64, shippingAddress string) Breakdown {
	if m.CalculateBreakdownFunc != nil {
		return m.CalculateBreakdownFunc(amount, gstPercentage, shippingAddress)
	}
	return (&GSTCalculator{}).CalculateBreakdown(amount, gstPercentage, shippingAddress)
}

// CalculateOnExclusiveAmount delegates to the configured function or to
// the real implementation.
func (m *MockCalculator) CalculateOnExclusiveAmount(amount, gstPercentage float64, shippingAddress string) Breakdown {
	if m.CalculateOnExclusiveAmountFunc != nil {
		return m.CalculateOnExclusiveAmountFunc(amount, gstPercentage, shippingAddress)
	}
	return (&GSTCalculator{}).CalculateOnExclusiveAmount(amount, gstPercentage, shippingAddress)
}
