package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BusinessMetrics holds Prometheus metrics for business-level
// observability of the pricing and reporting paths.
type BusinessMetrics struct {
	// Pricing
	QuotesComputed *prometheus.CounterVec
	OrdersPlaced   prometheus.Counter
	OrderValue     prometheus.Histogram
	OrderItemCount prometheus.Histogram

	// Statutory reporting
	ReportsGenerated  *prometheus.CounterVec
	ReportInvoiceRows prometheus.Histogram
}

// NewBusinessMetrics creates and registers all business metrics.
func NewBusinessMetrics(namespace string) *BusinessMetrics {
	if namespace == "" {
		namespace = "millsmitra"
	}

	subsystem := "business"

	return &BusinessMetrics{
		QuotesComputed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "quotes_computed_total",
				Help:      "Total price quotes computed",
			},
			[]string{"kind"}, // kind: line, order
		),
		OrdersPlaced: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "orders_placed_total",
				Help:      "Total orders persisted",
			},
		),
		OrderValue: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "order_value_rupees",
				Help:      "Grand total of placed orders in rupees",
				Buckets:   []float64{100, 250, 500, 1000, 2500, 5000, 10000, 25000},
			},
		),
		OrderItemCount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "order_item_count",
				Help:      "Number of line items per placed order",
				Buckets:   []float64{1, 2, 3, 5, 8, 13, 21},
			},
		),
		ReportsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "gstr1_reports_generated_total",
				Help:      "Total GSTR-1 reports generated",
			},
			[]string{"format"}, // format: json, csv, xlsx
		),
		ReportInvoiceRows: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "gstr1_report_invoices",
				Help:      "Invoices per generated GSTR-1 report",
				Buckets:   []float64{0, 10, 50, 100, 500, 1000, 5000},
			},
		),
	}
}

// Business is the global business metrics instance. Nil until
// InitBusinessMetrics runs; callers guard on nil so tests stay free of
// registry setup.
var Business *BusinessMetrics

// InitBusinessMetrics initializes the global business metrics instance.
func InitBusinessMetrics(namespace string) *BusinessMetrics {
	Business = NewBusinessMetrics(namespace)
	return Business
}
