package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/domain"
	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/gstr1"
	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/repository"
	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/tax"
	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/telemetry"
	"github.com/jackc/pgx/v5/pgtype"
)

type reportService struct {
	repo    repository.Querier
	builder *gstr1.Builder
}

// NewReportService creates a ReportService. The report builder shares
// the checkout calculator so exported figures match what carts were
// charged.
func NewReportService(repo repository.Querier, calc tax.Calculator) domain.ReportService {
	return &reportService{
		repo:    repo,
		builder: gstr1.NewBuilder(calc),
	}
}

func (s *reportService) GenerateGSTR1(ctx context.Context, periodStart, periodEnd time.Time) (*domain.GSTR1Report, error) {
	const op = "report.generate_gstr1"

	if periodEnd.Before(periodStart) {
		return nil, domain.ErrInvalidPeriod
	}

	rows, err := s.repo.ListOrdersInPeriod(ctx, repository.ListOrdersInPeriodParams{
		PeriodStart: pgtype.Timestamptz{Time: periodStart, Valid: true},
		PeriodEnd:   pgtype.Timestamptz{Time: periodEnd, Valid: true},
	})
	if err != nil {
		return nil, domain.Internal(err, op, "Failed to list orders for period")
	}

	inputs := make([]gstr1.OrderInput, 0, len(rows))
	for _, row := range rows {
		items, err := s.repo.GetOrderItems(ctx, row.Order.ID)
		if err != nil {
			return nil, domain.Internal(err, op, "Failed to load order items")
		}

		input := gstr1.OrderInput{
			OrderID:         row.Order.ID.String(),
			InvoiceNumber:   row.Order.OrderNumber,
			OrderDate:       row.Order.CreatedAt.Time,
			ShippingAddress: row.Order.ShippingAddress,
			CustomerName:    row.CustomerName,
			PaymentMethod:   row.Order.PaymentMethod,
			StoredTotal:     row.Order.GrandTotal,
			Items:           make([]gstr1.OrderItemInput, len(items)),
		}
		for i, it := range items {
			input.Items[i] = gstr1.OrderItemInput{
				ProductName:   it.ProductName,
				HSNCode:       it.HsnCode,
				GSTPercentage: it.GstPercentage,
				Price:         it.Price,
				Quantity:      it.Quantity,
			}
		}
		inputs = append(inputs, input)
	}

	invoices := s.builder.BuildInvoices(inputs)

	report := &domain.GSTR1Report{
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Invoices:    invoices,
		Summary:     gstr1.Aggregate(invoices),
	}

	if telemetry.Business != nil {
		telemetry.Business.ReportsGenerated.WithLabelValues("json").Inc()
		telemetry.Business.ReportInvoiceRows.Observe(float64(len(invoices)))
	}
	return report, nil
}

func (s *reportService) ExportGSTR1(ctx context.Context, periodStart, periodEnd time.Time) (*domain.GSTR1Report, error) {
	const op = "report.export_gstr1"

	report, err := s.GenerateGSTR1(ctx, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}

	breakdown, err := json.Marshal(report.Invoices)
	if err != nil {
		return nil, domain.Internal(err, op, "Failed to encode export breakdown")
	}

	_, err = s.repo.CreateGstr1Export(ctx, repository.CreateGstr1ExportParams{
		PeriodStart:       pgtype.Timestamptz{Time: periodStart, Valid: true},
		PeriodEnd:         pgtype.Timestamptz{Time: periodEnd, Valid: true},
		InvoiceCount:      int32(report.Summary.InvoiceCount),
		TotalTaxableValue: report.Summary.TotalTaxableValue,
		TotalCgst:         report.Summary.TotalCGST,
		TotalSgst:         report.Summary.TotalSGST,
		TotalIgst:         report.Summary.TotalIGST,
		TotalTaxAmount:    report.Summary.TotalTaxAmount,
		TotalInvoiceValue: report.Summary.TotalInvoiceValue,
		Breakdown:         breakdown,
	})
	if err != nil {
		return nil, domain.Internal(err, op, "Failed to record export")
	}
	return report, nil
}
