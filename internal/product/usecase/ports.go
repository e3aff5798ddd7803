package usecase

import (
	"context"

	"franquicia/internal/domain"
)

type ProductRepository interface {
	Save(ctx context.Context, product domain.Product) (domain.Product, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	FindByNameAndBranchID(ctx context.Context, name string, branchID int64) (*domain.Product, error)
	DeleteByID(ctx context.Context, id int64) error
	UpdateStock(ctx context.Context, id int64, stock int) error
	UpdateName(ctx context.Context, id int64, name string) error
}

type BranchRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Branch, error)
}
