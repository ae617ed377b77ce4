package repository

import (
	"context"
)

const createGstr1Export = `
INSERT INTO gstr1_exports (
	period_start, period_end, invoice_count, total_taxable_value,
	total_cgst, total_sgst, total_igst, total_tax_amount, total_invoice_value, breakdown
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id, period_start, period_end, invoice_count, total_taxable_value,
	total_cgst, total_sgst, total_igst, total_tax_amount, total_invoice_value, breakdown, created_at
`

// CreateGstr1Export persists an audit snapshot of a generated export.
func (q *Queries) CreateGstr1Export(ctx context.Context, arg CreateGstr1ExportParams) (Gstr1Export, error) {
	row := q.db.QueryRow(ctx, createGstr1Export,
		arg.PeriodStart,
		arg.PeriodEnd,
		arg.InvoiceCount,
		arg.TotalTaxableValue,
		arg.TotalCgst,
		arg.TotalSgst,
		arg.TotalIgst,
		arg.TotalTaxAmount,
		arg.TotalInvoiceValue,
		arg.Breakdown,
	)
	var e Gstr1Export
	err := row.Scan(
		&e.ID,
		&e.PeriodStart,
		&e.PeriodEnd,
		&e.InvoiceCount,
		&e.TotalTaxableValue,
		&e.TotalCgst,
		&e.TotalSgst,
		&e.TotalIgst,
		&e.TotalTaxAmount,
		&e.TotalInvoiceValue,
		&e.Breakdown,
		&e.CreatedAt,
	)
	return e, err
}
