// Package repository is the persistence layer over PostgreSQL.
// Services depend on the Querier interface so tests can substitute a
// func-field mock.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Querier is the query surface services program against.
type Querier interface {
	GetProduct(ctx context.Context, id pgtype.UUID) (Product, error)
	ListActiveProducts(ctx context.Context) ([]Product, error)

	CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error)
	CreateOrderItem(ctx context.Context, arg CreateOrderItemParams) (OrderItem, error)
	GetOrder(ctx context.Context, id pgtype.UUID) (Order, error)
	GetOrderItems(ctx context.Context, orderID pgtype.UUID) ([]OrderItem, error)
	ListOrdersInPeriod(ctx context.Context, arg ListOrdersInPeriodParams) ([]ListOrdersInPeriodRow, error)

	CreateGstr1Export(ctx context.Context, arg CreateGstr1ExportParams) (Gstr1Export, error)
}

// Queries implements Querier over a live database handle.
type Queries struct {
	db DBTX
}

// New creates a Queries bound to the given handle.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

var _ Querier = (*Queries)(nil)
