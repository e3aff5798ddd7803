package usecase

import (
	"context"

	"franquicia/internal/domain"
)

// Mock implementations

type mockBranchRepository struct {
	SaveFunc                     func(ctx context.Context, branch domain.Branch) (domain.Branch, error)
	FindByIDFunc                 func(ctx context.Context, id int64) (*domain.Branch, error)
	FindByNameAndFranchiseIDFunc func(ctx context.Context, name string, franchiseID int64) (*domain.Branch, error)
	UpdateNameFunc               func(ctx context.Context, id int64, name string) error

	saveCalls       int
	findByNameCalls int
	updateNameCalls int
}

func (m *mockBranchRepository) Save(ctx context.Context, branch domain.Branch) (domain.Branch, error) {
	m.saveCalls++
	return m.SaveFunc(ctx, branch)
}

func (m *mockBranchRepository) FindByID(ctx context.Context, id int64) (*domain.Branch, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockBranchRepository) FindByNameAndFranchiseID(ctx context.Context, name string, franchiseID int64) (*domain.Branch, error) {
	m.findByNameCalls++
	return m.FindByNameAndFranchiseIDFunc(ctx, name, franchiseID)
}

func (m *mockBranchRepository) UpdateName(ctx context.Context, id int64, name string) error {
	m.updateNameCalls++
	return m.UpdateNameFunc(ctx, id, name)
}

type mockFranchiseRepository struct {
	FindByIDFunc func(ctx context.Context, id int64) (*domain.Franchise, error)

	findByIDCalls int
}

func (m *mockFranchiseRepository) FindByID(ctx context.Context, id int64) (*domain.Franchise, error) {
	m.findByIDCalls++
	return m.FindByIDFunc(ctx, id)
}
