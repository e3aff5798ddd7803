package usecase

import (
	"context"

	"franquicia/internal/commons"
	"franquicia/internal/domain"
	apperrors "franquicia/internal/errors"

	"go.uber.org/zap"
)

type UpdateFranchiseNameUseCase struct {
	franchiseRepo FranchiseRepository
	logger        *zap.Logger
}

func NewUpdateFranchiseNameUseCase(franchiseRepo FranchiseRepository, logger *zap.Logger) *UpdateFranchiseNameUseCase {
	return &UpdateFranchiseNameUseCase{
		franchiseRepo: franchiseRepo,
		logger:        logger,
	}
}

// Execute renombra una franquicia. Renombrar al nombre que ya tiene es
// válido y aun así emite la actualización. El resultado se arma localmente
// sobre la entidad ya leída en lugar de releerla.
func (uc *UpdateFranchiseNameUseCase) Execute(ctx context.Context, franchiseID int64, rawName string) (*domain.Franchise, error) {
	name, ok := commons.NormalizeName(rawName)
	if !ok {
		return nil, apperrors.ErrFranchiseNameEmpty
	}

	franchise, err := uc.franchiseRepo.FindByID(ctx, franchiseID)
	if err != nil {
		return nil, err
	}

	holder, err := uc.franchiseRepo.FindByName(ctx, name)
	if err != nil && !apperrors.IsNotFound(err) {
		return nil, err
	}
	if holder != nil && holder.ID != franchiseID {
		return nil, apperrors.ErrFranchiseNameDuplicate
	}

	if err := uc.franchiseRepo.UpdateName(ctx, franchiseID, name); err != nil {
		return nil, err
	}

	uc.logger.Info("franchise renamed", zap.Int64("franchiseId", franchiseID), zap.String("name", name))

	franchise.Name = name
	return franchise, nil
}
