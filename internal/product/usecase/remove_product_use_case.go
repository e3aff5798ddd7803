package usecase

import (
	"context"

	apperrors "franquicia/internal/errors"

	"go.uber.org/zap"
)

type RemoveProductUseCase struct {
	productRepo ProductRepository
	branchRepo  BranchRepository
	logger      *zap.Logger
}

func NewRemoveProductUseCase(productRepo ProductRepository, branchRepo BranchRepository, logger *zap.Logger) *RemoveProductUseCase {
	return &RemoveProductUseCase{
		productRepo: productRepo,
		branchRepo:  branchRepo,
		logger:      logger,
	}
}

// Execute elimina un producto de una sucursal. Antes de borrar se verifica
// que el producto realmente pertenezca a la sucursal indicada: un id de
// producto válido accedido por la sucursal equivocada no debe borrarse.
func (uc *RemoveProductUseCase) Execute(ctx context.Context, branchID, productID int64) error {
	if _, err := uc.branchRepo.FindByID(ctx, branchID); err != nil {
		return err
	}

	product, err := uc.productRepo.FindByID(ctx, productID)
	if err != nil {
		return err
	}

	if product.BranchID != branchID {
		return apperrors.ErrProductRemoval
	}

	if err := uc.productRepo.DeleteByID(ctx, productID); err != nil {
		return err
	}

	uc.logger.Info("product removed", zap.Int64("productId", productID), zap.Int64("branchId", branchID))
	return nil
}
