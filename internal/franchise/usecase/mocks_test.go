package usecase

import (
	"context"

	"franquicia/internal/domain"
)

// Mock implementations

type mockFranchiseRepository struct {
	SaveFunc       func(ctx context.Context, franchise domain.Franchise) (domain.Franchise, error)
	FindByIDFunc   func(ctx context.Context, id int64) (*domain.Franchise, error)
	FindByNameFunc func(ctx context.Context, name string) (*domain.Franchise, error)
	UpdateNameFunc func(ctx context.Context, id int64, name string) error

	saveCalls       int
	findByIDCalls   int
	findByNameCalls int
	updateNameCalls int
}

func (m *mockFranchiseRepository) Save(ctx context.Context, franchise domain.Franchise) (domain.Franchise, error) {
	m.saveCalls++
	return m.SaveFunc(ctx, franchise)
}

func (m *mockFranchiseRepository) FindByID(ctx context.Context, id int64) (*domain.Franchise, error) {
	m.findByIDCalls++
	return m.FindByIDFunc(ctx, id)
}

func (m *mockFranchiseRepository) FindByName(ctx context.Context, name string) (*domain.Franchise, error) {
	m.findByNameCalls++
	return m.FindByNameFunc(ctx, name)
}

func (m *mockFranchiseRepository) UpdateName(ctx context.Context, id int64, name string) error {
	m.updateNameCalls++
	return m.UpdateNameFunc(ctx, id, name)
}

type mockBranchWithTopProductFinder struct {
	FindWithTopProductByFranchiseIDFunc func(ctx context.Context, franchiseID int64) ([]domain.BranchWithTopProduct, error)
}

func (m *mockBranchWithTopProductFinder) FindWithTopProductByFranchiseID(ctx context.Context, franchiseID int64) ([]domain.BranchWithTopProduct, error) {
	return m.FindWithTopProductByFranchiseIDFunc(ctx, franchiseID)
}
