package domain

import (
	"context"
	"time"

	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/gstr1"
)

// Reporting errors.
var (
	ErrInvalidPeriod = &Error{Code: EINVALID, Message: "Report period end must not precede its start"}
)

// GSTR1Report is a generated statutory report for one period: the
// per-invoice breakdowns plus their aggregate summary.
type GSTR1Report struct {
	PeriodStart time.Time
	PeriodEnd   time.Time
	Invoices    []gstr1.Invoice
	Summary     gstr1.Summary
}

// ReportService generates statutory reports from order history.
type ReportService interface {
	// GenerateGSTR1 builds the report for orders created within
	// [periodStart, periodEnd]. An empty period yields an empty report,
	// not an error.
	GenerateGSTR1(ctx context.Context, periodStart, periodEnd time.Time) (*GSTR1Report, error)

	// ExportGSTR1 generates the report and persists an audit snapshot
	// of the export (period bounds, totals, raw breakdown).
	ExportGSTR1(ctx context.Context, periodStart, periodEnd time.Time) (*GSTR1Report, error)
}
