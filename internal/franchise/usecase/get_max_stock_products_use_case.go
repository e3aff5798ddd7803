package usecase

import (
	"context"

	"franquicia/internal/domain"

	"go.uber.org/zap"
)

type GetMaxStockProductsUseCase struct {
	franchiseRepo FranchiseRepository
	branchFinder  BranchWithTopProductFinder
	logger        *zap.Logger
}

func NewGetMaxStockProductsUseCase(
	franchiseRepo FranchiseRepository,
	branchFinder BranchWithTopProductFinder,
	logger *zap.Logger,
) *GetMaxStockProductsUseCase {
	return &GetMaxStockProductsUseCase{
		franchiseRepo: franchiseRepo,
		branchFinder:  branchFinder,
		logger:        logger,
	}
}

// Execute arma la vista de reporte: la franquicia con una entrada por cada
// una de sus sucursales y el producto de mayor stock de cada una. Una
// franquicia sin sucursales produce la lista vacía.
func (uc *GetMaxStockProductsUseCase) Execute(ctx context.Context, franchiseID int64) (*domain.FranchiseWithTopProducts, error) {
	franchise, err := uc.franchiseRepo.FindByID(ctx, franchiseID)
	if err != nil {
		return nil, err
	}

	branches, err := uc.branchFinder.FindWithTopProductByFranchiseID(ctx, franchiseID)
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("max stock report built",
		zap.Int64("franchiseId", franchiseID),
		zap.Int("branchCount", len(branches)),
	)

	return &domain.FranchiseWithTopProducts{
		Franchise: *franchise,
		Branches:  branches,
	}, nil
}
