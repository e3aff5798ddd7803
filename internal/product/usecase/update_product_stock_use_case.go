package usecase

import (
	"context"

	"franquicia/internal/domain"
	apperrors "franquicia/internal/errors"

	"go.uber.org/zap"
)

type UpdateProductStockUseCase struct {
	productRepo ProductRepository
	logger      *zap.Logger
}

func NewUpdateProductStockUseCase(productRepo ProductRepository, logger *zap.Logger) *UpdateProductStockUseCase {
	return &UpdateProductStockUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Execute fija el stock de un producto. El nuevo valor se valida antes de
// cualquier acceso a datos; el resultado se arma localmente porque el único
// campo que cambió ya lo conoce el llamador.
func (uc *UpdateProductStockUseCase) Execute(ctx context.Context, productID int64, newStock int) (*domain.Product, error) {
	if newStock < 0 {
		return nil, apperrors.ErrProductStockInvalid
	}

	product, err := uc.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := uc.productRepo.UpdateStock(ctx, productID, newStock); err != nil {
		return nil, err
	}

	uc.logger.Info("product stock updated", zap.Int64("productId", productID), zap.Int("stock", newStock))

	product.Stock = newStock
	return product, nil
}
