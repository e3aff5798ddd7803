package usecase

import (
	"context"

	"franquicia/internal/domain"
)

type FranchiseRepository interface {
	Save(ctx context.Context, franchise domain.Franchise) (domain.Franchise, error)
	FindByID(ctx context.Context, id int64) (*domain.Franchise, error)
	FindByName(ctx context.Context, name string) (*domain.Franchise, error)
	UpdateName(ctx context.Context, id int64, name string) error
}

type BranchWithTopProductFinder interface {
	FindWithTopProductByFranchiseID(ctx context.Context, franchiseID int64) ([]domain.BranchWithTopProduct, error)
}
