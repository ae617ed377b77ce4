// Package service implements the domain service interfaces over the
// repository, the tax calculator and the shipping provider.
package service

import (
	"context"
	"errors"

	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/domain"
	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type catalogService struct {
	repo repository.Querier
}

// NewCatalogService creates a CatalogService backed by the repository.
func NewCatalogService(repo repository.Querier) domain.CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	var id pgtype.UUID
	if err := id.Scan(productID); err != nil {
		return nil, domain.Invalid("catalog.get_product", "Invalid product ID")
	}

	row, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, domain.Internal(err, "catalog.get_product", "Failed to load product")
	}

	p := productFromRow(row)
	return &p, nil
}

func (s *catalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := s.repo.ListActiveProducts(ctx)
	if err != nil {
		return nil, domain.Internal(err, "catalog.list_products", "Failed to list products")
	}

	products := make([]domain.Product, len(rows))
	for i, row := range rows {
		products[i] = productFromRow(row)
	}
	return products, nil
}

func productFromRow(row repository.Product) domain.Product {
	return domain.Product{
		ID:              row.ID.String(),
		Name:            row.Name,
		Slug:            row.Slug,
		Price:           row.Price,
		DiscountedPrice: row.DiscountedPrice,
		GSTPercentage:   row.GstPercentage,
		HSNCode:         row.HsnCode,
		IsActive:        row.IsActive,
	}
}
