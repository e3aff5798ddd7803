package usecase

import (
	"context"

	"franquicia/internal/commons"
	"franquicia/internal/domain"
	apperrors "franquicia/internal/errors"

	"go.uber.org/zap"
)

type CreateFranchiseUseCase struct {
	franchiseRepo FranchiseRepository
	logger        *zap.Logger
}

func NewCreateFranchiseUseCase(franchiseRepo FranchiseRepository, logger *zap.Logger) *CreateFranchiseUseCase {
	return &CreateFranchiseUseCase{
		franchiseRepo: franchiseRepo,
		logger:        logger,
	}
}

// Execute valida el nombre, verifica que no exista otra franquicia con ese
// nombre y persiste la nueva franquicia. La verificación de unicidad es una
// vía rápida: bajo concurrencia la garantía real la da el índice único de la
// tabla.
func (uc *CreateFranchiseUseCase) Execute(ctx context.Context, rawName string) (*domain.Franchise, error) {
	name, ok := commons.NormalizeName(rawName)
	if !ok {
		return nil, apperrors.ErrFranchiseNameEmpty
	}

	existing, err := uc.franchiseRepo.FindByName(ctx, name)
	if err != nil && !apperrors.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrFranchiseNameExists
	}

	created, err := uc.franchiseRepo.Save(ctx, domain.Franchise{Name: name})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("franchise created", zap.Int64("franchiseId", created.ID), zap.String("name", created.Name))
	return &created, nil
}
