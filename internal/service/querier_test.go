package service

import (
	"context"
	"testing"

	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// mockQuerier implements repository.Querier with overridable func
// fields. Methods without an override fail the surrounding test if
// called, or return not-found where that is the natural default.
type mockQuerier struct {
	t *testing.T

	getProductFunc         func(ctx context.Context, id pgtype.UUID) (repository.Product, error)
	listActiveProductsFunc func(ctx context.Context) ([]repository.Product, error)
	createOrderFunc        func(ctx context.Context, arg repository.CreateOrderParams) (repository.Order, error)
	createOrderItemFunc    func(ctx context.Context, arg repository.CreateOrderItemParams) (repository.OrderItem, error)
	getOrderFunc           func(ctx context.Context, id pgtype.UUID) (repository.Order, error)
	getOrderItemsFunc      func(ctx context.Context, orderID pgtype.UUID) ([]repository.OrderItem, error)
	listOrdersInPeriodFunc func(ctx context.Context, arg repository.ListOrdersInPeriodParams) ([]repository.ListOrdersInPeriodRow, error)
	createGstr1ExportFunc  func(ctx context.Context, arg repository.CreateGstr1ExportParams) (repository.Gstr1Export, error)
}

var _ repository.Querier = (*mockQuerier)(nil)

func (m *mockQuerier) GetProduct(ctx context.Context, id pgtype.UUID) (repository.Product, error) {
	if m.getProductFunc != nil {
		return m.getProductFunc(ctx, id)
	}
	return repository.Product{}, pgx.ErrNoRows
}

func (m *mockQuerier) ListActiveProducts(ctx context.Context) ([]repository.Product, error) {
	if m.listActiveProductsFunc != nil {
		return m.listActiveProductsFunc(ctx)
	}
	return nil, nil
}

func (m *mockQuerier) CreateOrder(ctx context.Context, arg repository.CreateOrderParams) (repository.Order, error) {
	if m.createOrderFunc != nil {
		return m.createOrderFunc(ctx, arg)
	}
	m.t.Fatal("unexpected CreateOrder call")
	return repository.Order{}, nil
}

func (m *mockQuerier) CreateOrderItem(ctx context.Context, arg repository.CreateOrderItemParams) (repository.OrderItem, error) {
	if m.createOrderItemFunc != nil {
		return m.createOrderItemFunc(ctx, arg)
	}
	m.t.Fatal("unexpected CreateOrderItem call")
	return repository.OrderItem{}, nil
}

func (m *mockQuerier) GetOrder(ctx context.Context, id pgtype.UUID) (repository.Order, error) {
	if m.getOrderFunc != nil {
		return m.getOrderFunc(ctx, id)
	}
	return repository.Order{}, pgx.ErrNoRows
}

func (m *mockQuerier) GetOrderItems(ctx context.Context, orderID pgtype.UUID) ([]repository.OrderItem, error) {
	if m.getOrderItemsFunc != nil {
		return m.getOrderItemsFunc(ctx, orderID)
	}
	return nil, nil
}

func (m *mockQuerier) ListOrdersInPeriod(ctx context.Context, arg repository.ListOrdersInPeriodParams) ([]repository.ListOrdersInPeriodRow, error) {
	if m.listOrdersInPeriodFunc != nil {
		return m.listOrdersInPeriodFunc(ctx, arg)
	}
	return nil, nil
}

func (m *mockQuerier) CreateGstr1Export(ctx context.Context, arg repository.CreateGstr1ExportParams) (repository.Gstr1Export, error) {
	if m.createGstr1ExportFunc != nil {
		return m.createGstr1ExportFunc(ctx, arg)
	}
	m.t.Fatal("unexpected CreateGstr1Export call")
	return repository.Gstr1Export{}, nil
}

func mustUUID(t *testing.T, s string) pgtype.UUID {
	t.Helper()
	var id pgtype.UUID
	if err := id.Scan(s); err != nil {
		t.Fatalf("invalid test UUID %q: %v", s, err)
	}
	return id
}

func floatPtr(v float64) *float64 { return &v }

func strPtr(s string) *string { return &s }
