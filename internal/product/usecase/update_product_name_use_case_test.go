package usecase

import (
	"context"
	"errors"
	"testing"

	"franquicia/internal/domain"
	apperrors "franquicia/internal/errors"

	"go.uber.org/zap"
)

func TestUpdateProductName_Success_ScopedToOwningBranch(t *testing.T) {
	ctx := context.Background()

	productRepo := &mockProductRepository{
		FindByIDFunc: func(ctx context.Context, id int64) (*domain.Product, error) {
			return &domain.Product{ID: id, Name: "Latte", Stock: 5, BranchID: 2}, nil
		},
		FindByNameAndBranchIDFunc: func(ctx context.Context, name string, branchID int64) (*domain.Product, error) {
			if branchID != 2 {
				t.Errorf("expected uniqueness scoped to branch 2, got %d", branchID)
			}
			return nil, apperrors.ErrProductNotFound
		},
		UpdateNameFunc: func(ctx context.Context, id int64, name string) error {
			return nil
		},
	}

	uc := NewUpdateProductNameUseCase(productRepo, zap.NewNop())

	product, err := uc.Execute(ctx, 10, "  Mocha  ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if product.Name != "Mocha" {
		t.Errorf("expected merged name %q, got %q", "Mocha", product.Name)
	}
	if product.Stock != 5 || product.BranchID != 2 {
		t.Errorf("expected other fields untouched, got %+v", product)
	}
}

func TestUpdateProductName_SelfRenameIsIdempotent(t *testing.T) {
	ctx := context.Background()

	productRepo := &mockProductRepository{
		FindByIDFunc: func(ctx context.Context, id int64) (*domain.Product, error) {
			return &domain.Product{ID: id, Name: "Latte", BranchID: 2}, nil
		},
		FindByNameAndBranchIDFunc: func(ctx context.Context, name string, branchID int64) (*domain.Product, error) {
			return &domain.Product{ID: 10, Name: name, BranchID: branchID}, nil
		},
		UpdateNameFunc: func(ctx context.Context, id int64, name string) error {
			return nil
		},
	}

	uc := NewUpdateProductNameUseCase(productRepo, zap.NewNop())

	_, err := uc.Execute(ctx, 10, "Latte")
	if err != nil {
		t.Fatalf("expected self-rename to succeed, got %v", err)
	}
	if productRepo.updateNameCalls != 1 {
		t.Errorf("expected update still issued, got %d calls", productRepo.updateNameCalls)
	}
}

func TestUpdateProductName_DuplicateInBranch(t *testing.T) {
	ctx := context.Background()

	productRepo := &mockProductRepository{
		FindByIDFunc: func(ctx context.Context, id int64) (*domain.Product, error) {
			return &domain.Product{ID: id, Name: "Latte", BranchID: 2}, nil
		},
		FindByNameAndBranchIDFunc: func(ctx context.Context, name string, branchID int64) (*domain.Product, error) {
			return &domain.Product{ID: 99, Name: name, BranchID: branchID}, nil
		},
	}

	uc := NewUpdateProductNameUseCase(productRepo, zap.NewNop())

	_, err := uc.Execute(ctx, 10, "Mocha")

	if !errors.Is(err, apperrors.ErrProductNameDuplicate) {
		t.Errorf("expected ErrProductNameDuplicate, got %v", err)
	}
	if productRepo.updateNameCalls != 0 {
		t.Errorf("expected update never called, got %d calls", productRepo.updateNameCalls)
	}
}

func TestUpdateProductName_ProductNotFound(t *testing.T) {
	ctx := context.Background()

	productRepo := &mockProductRepository{
		FindByIDFunc: func(ctx context.Context, id int64) (*domain.Product, error) {
			return nil, apperrors.ErrProductNotFound
		},
	}

	uc := NewUpdateProductNameUseCase(productRepo, zap.NewNop())

	_, err := uc.Execute(ctx, 404, "Mocha")

	if !errors.Is(err, apperrors.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
	if productRepo.findByNameCalls != 0 {
		t.Errorf("expected uniqueness check never reached, got %d calls", productRepo.findByNameCalls)
	}
}

func TestUpdateProductName_EmptyName(t *testing.T) {
	ctx := context.Background()

	productRepo := &mockProductRepository{}
	uc := NewUpdateProductNameUseCase(productRepo, zap.NewNop())

	_, err := uc.Execute(ctx, 10, " \t ")

	if !errors.Is(err, apperrors.ErrProductNameEmpty) {
		t.Errorf("expected ErrProductNameEmpty, got %v", err)
	}
}
