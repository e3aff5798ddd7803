package usecase

import (
	"context"

	"franquicia/internal/commons"
	"franquicia/internal/domain"
	apperrors "franquicia/internal/errors"

	"go.uber.org/zap"
)

type UpdateProductNameUseCase struct {
	productRepo ProductRepository
	logger      *zap.Logger
}

func NewUpdateProductNameUseCase(productRepo ProductRepository, logger *zap.Logger) *UpdateProductNameUseCase {
	return &UpdateProductNameUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Execute renombra un producto. La unicidad del nuevo nombre se evalúa
// dentro de la sucursal dueña; renombrar al nombre actual es válido.
func (uc *UpdateProductNameUseCase) Execute(ctx context.Context, productID int64, rawName string) (*domain.Product, error) {
	name, ok := commons.NormalizeName(rawName)
	if !ok {
		return nil, apperrors.ErrProductNameEmpty
	}

	product, err := uc.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	holder, err := uc.productRepo.FindByNameAndBranchID(ctx, name, product.BranchID)
	if err != nil && !apperrors.IsNotFound(err) {
		return nil, err
	}
	if holder != nil && holder.ID != productID {
		return nil, apperrors.ErrProductNameDuplicate
	}

	if err := uc.productRepo.UpdateName(ctx, productID, name); err != nil {
		return nil, err
	}

	uc.logger.Info("product renamed", zap.Int64("productId", productID), zap.String("name", name))

	product.Name = name
	return product, nil
}
