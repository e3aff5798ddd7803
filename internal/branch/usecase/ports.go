package usecase

import (
	"context"

	"franquicia/internal/domain"
)

type BranchRepository interface {
	Save(ctx context.Context, branch domain.Branch) (domain.Branch, error)
	FindByID(ctx context.Context, id int64) (*domain.Branch, error)
	FindByNameAndFranchiseID(ctx context.Context, name string, franchiseID int64) (*domain.Branch, error)
	UpdateName(ctx context.Context, id int64, name string) error
}

type FranchiseRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Franchise, error)
}
