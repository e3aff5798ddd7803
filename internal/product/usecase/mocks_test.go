package usecase

import (
	"context"

	"franquicia/internal/domain"
)

// Mock implementations

type mockProductRepository struct {
	SaveFunc                  func(ctx context.Context, product domain.Product) (domain.Product, error)
	FindByIDFunc              func(ctx context.Context, id int64) (*domain.Product, error)
	FindByNameAndBranchIDFunc func(ctx context.Context, name string, branchID int64) (*domain.Product, error)
	DeleteByIDFunc            func(ctx context.Context, id int64) error
	UpdateStockFunc           func(ctx context.Context, id int64, stock int) error
	UpdateNameFunc            func(ctx context.Context, id int64, name string) error

	saveCalls        int
	findByNameCalls  int
	deleteByIDCalls  int
	updateStockCalls int
	updateNameCalls  int
}

func (m *mockProductRepository) Save(ctx context.Context, product domain.Product) (domain.Product, error) {
	m.saveCalls++
	return m.SaveFunc(ctx, product)
}

func (m *mockProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockProductRepository) FindByNameAndBranchID(ctx context.Context, name string, branchID int64) (*domain.Product, error) {
	m.findByNameCalls++
	return m.FindByNameAndBranchIDFunc(ctx, name, branchID)
}

func (m *mockProductRepository) DeleteByID(ctx context.Context, id int64) error {
	m.deleteByIDCalls++
	return m.DeleteByIDFunc(ctx, id)
}

func (m *mockProductRepository) UpdateStock(ctx context.Context, id int64, stock int) error {
	m.updateStockCalls++
	return m.UpdateStockFunc(ctx, id, stock)
}

func (m *mockProductRepository) UpdateName(ctx context.Context, id int64, name string) error {
	m.updateNameCalls++
	return m.UpdateNameFunc(ctx, id, name)
}

type mockBranchRepository struct {
	FindByIDFunc func(ctx context.Context, id int64) (*domain.Branch, error)

	findByIDCalls int
}

func (m *mockBranchRepository) FindByID(ctx context.Context, id int64) (*domain.Branch, error) {
	m.findByIDCalls++
	return m.FindByIDFunc(ctx, id)
}
