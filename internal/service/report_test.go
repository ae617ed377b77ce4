package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/domain"
	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/gstr1"
	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/repository"
	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/tax"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func periodOrder(t *testing.T, grandTotal float64, address string) repository.ListOrdersInPeriodRow {
	return repository.ListOrdersInPeriodRow{
		Order: repository.Order{
			ID:              mustUUID(t, testOrderID),
			OrderNumber:     "ORD-20260105-deadbeef",
			ShippingAddress: address,
			PaymentMethod:   "cod",
			GrandTotal:      grandTotal,
			CreatedAt:       pgtype.Timestamptz{Time: time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC), Valid: true},
		},
		CustomerName: strPtr("Anita Rao"),
	}
}

func periodItems(t *testing.T) []repository.OrderItem {
	return []repository.OrderItem{
		{
			ID:            mustUUID(t, testProductID),
			OrderID:       mustUUID(t, testOrderID),
			ProductID:     mustUUID(t, testProductID),
			ProductName:   "Ragi Flour 1kg",
			HsnCode:       strPtr("1102"),
			GstPercentage: floatPtr(18),
			Price:         118,
			Quantity:      2,
		},
	}
}

func TestReportService_GenerateGSTR1(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)

	t.Run("inverted period is rejected", func(t *testing.T) {
		svc := NewReportService(&mockQuerier{t: t}, tax.NewGSTCalculator())

		_, err := svc.GenerateGSTR1(context.Background(), end, start)
		assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
	})

	t.Run("empty period yields an empty report", func(t *testing.T) {
		svc := NewReportService(&mockQuerier{t: t}, tax.NewGSTCalculator())

		report, err := svc.GenerateGSTR1(context.Background(), start, end)
		require.NoError(t, err)

		assert.Empty(t, report.Invoices)
		assert.Equal(t, 0, report.Summary.InvoiceCount)
		assert.Equal(t, 0.0, report.Summary.TotalInvoiceValue)
	})

	t.Run("builds invoices from order history", func(t *testing.T) {
		repo := &mockQuerier{
			t: t,
			listOrdersInPeriodFunc: func(ctx context.Context, arg repository.ListOrdersInPeriodParams) ([]repository.ListOrdersInPeriodRow, error) {
				assert.Equal(t, start, arg.PeriodStart.Time)
				assert.Equal(t, end, arg.PeriodEnd.Time)
				return []repository.ListOrdersInPeriodRow{
					periodOrder(t, 286, "Chennai, Tamil Nadu"),
				}, nil
			},
			getOrderItemsFunc: func(ctx context.Context, orderID pgtype.UUID) ([]repository.OrderItem, error) {
				return periodItems(t), nil
			},
		}
		svc := NewReportService(repo, tax.NewGSTCalculator())

		report, err := svc.GenerateGSTR1(context.Background(), start, end)
		require.NoError(t, err)
		require.Len(t, report.Invoices, 1)

		inv := report.Invoices[0]
		assert.Equal(t, "ORD-20260105-deadbeef", inv.InvoiceNumber)
		assert.Equal(t, "Anita Rao", inv.CustomerName)
		assert.Equal(t, gstr1.PlaceOfSupplyOutside, inv.PlaceOfSupply)
		assert.Equal(t, "05-01-2026", inv.InvoiceDate)
		assert.InDelta(t, 200, inv.TaxableValue, 1e-9)
		assert.InDelta(t, 36, inv.TaxAmount, 1e-9)

		// Stored total 286 vs recomputed 236: the delivery charge
		// surfaces as other charges on a COD order.
		assert.InDelta(t, 50, inv.OtherCharges, 1e-9)
		assert.Equal(t, "COD charges", inv.OtherChargeNote)

		assert.Equal(t, 1, report.Summary.InvoiceCount)
		assert.InDelta(t, 36, report.Summary.TotalIGST, 1e-9)
		assert.Equal(t, 0.0, report.Summary.TotalCGST)
		assert.Equal(t, report.Summary.TotalCGST+report.Summary.TotalSGST+report.Summary.TotalIGST,
			report.Summary.TotalTaxAmount)
	})
}

func TestReportService_ExportGSTR1(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)

	t.Run("records an audit snapshot", func(t *testing.T) {
		var got repository.CreateGstr1ExportParams

		repo := &mockQuerier{
			t: t,
			listOrdersInPeriodFunc: func(ctx context.Context, arg repository.ListOrdersInPeriodParams) ([]repository.ListOrdersInPeriodRow, error) {
				return []repository.ListOrdersInPeriodRow{
					periodOrder(t, 236, "Bengaluru, Karnataka"),
				}, nil
			},
			getOrderItemsFunc: func(ctx context.Context, orderID pgtype.UUID) ([]repository.OrderItem, error) {
				return periodItems(t), nil
			},
			createGstr1ExportFunc: func(ctx context.Context, arg repository.CreateGstr1ExportParams) (repository.Gstr1Export, error) {
				got = arg
				return repository.Gstr1Export{}, nil
			},
		}
		svc := NewReportService(repo, tax.NewGSTCalculator())

		report, err := svc.ExportGSTR1(context.Background(), start, end)
		require.NoError(t, err)

		assert.Equal(t, int32(1), got.InvoiceCount)
		assert.Equal(t, report.Summary.TotalTaxableValue, got.TotalTaxableValue)
		assert.Equal(t, report.Summary.TotalTaxAmount, got.TotalTaxAmount)

		var stored []gstr1.Invoice
		require.NoError(t, json.Unmarshal(got.Breakdown, &stored))
		require.Len(t, stored, 1)
		assert.Equal(t, report.Invoices[0].InvoiceNumber, stored[0].InvoiceNumber)
	})

	t.Run("generation failure skips the snapshot", func(t *testing.T) {
		svc := NewReportService(&mockQuerier{t: t}, tax.NewGSTCalculator())

		_, err := svc.ExportGSTR1(context.Background(), end, start)
		assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
	})
}
