package usecase

import (
	"context"

	"franquicia/internal/commons"
	"franquicia/internal/domain"
	apperrors "franquicia/internal/errors"

	"go.uber.org/zap"
)

type AddProductUseCase struct {
	productRepo ProductRepository
	branchRepo  BranchRepository
	logger      *zap.Logger
}

func NewAddProductUseCase(productRepo ProductRepository, branchRepo BranchRepository, logger *zap.Logger) *AddProductUseCase {
	return &AddProductUseCase{
		productRepo: productRepo,
		branchRepo:  branchRepo,
		logger:      logger,
	}
}

// Execute agrega un producto a una sucursal. Nombre y stock se validan antes
// de cualquier acceso a datos; luego existencia de la sucursal y unicidad
// del nombre dentro de ella, en ese orden.
func (uc *AddProductUseCase) Execute(ctx context.Context, branchID int64, rawName string, stock int) (*domain.Product, error) {
	name, ok := commons.NormalizeName(rawName)
	if !ok {
		return nil, apperrors.ErrProductNameEmpty
	}
	if stock < 0 {
		return nil, apperrors.ErrProductStockInvalid
	}

	if _, err := uc.branchRepo.FindByID(ctx, branchID); err != nil {
		return nil, err
	}

	existing, err := uc.productRepo.FindByNameAndBranchID(ctx, name, branchID)
	if err != nil && !apperrors.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrProductNameDuplicate
	}

	created, err := uc.productRepo.Save(ctx, domain.Product{
		Name:     name,
		Stock:    stock,
		BranchID: branchID,
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("product added",
		zap.Int64("productId", created.ID),
		zap.Int64("branchId", branchID),
		zap.String("name", created.Name),
		zap.Int("stock", created.Stock),
	)
	return &created, nil
}
