package usecase

import (
	"context"

	"franquicia/internal/commons"
	"franquicia/internal/domain"
	apperrors "franquicia/internal/errors"

	"go.uber.org/zap"
)

type AddBranchUseCase struct {
	branchRepo    BranchRepository
	franchiseRepo FranchiseRepository
	logger        *zap.Logger
}

func NewAddBranchUseCase(branchRepo BranchRepository, franchiseRepo FranchiseRepository, logger *zap.Logger) *AddBranchUseCase {
	return &AddBranchUseCase{
		branchRepo:    branchRepo,
		franchiseRepo: franchiseRepo,
		logger:        logger,
	}
}

// Execute agrega una sucursal a una franquicia. La existencia de la
// franquicia se verifica antes que la unicidad del nombre: si ambas fallan,
// el llamador siempre recibe FRANCHISE_NOT_FOUND.
func (uc *AddBranchUseCase) Execute(ctx context.Context, franchiseID int64, rawName string) (*domain.Branch, error) {
	name, ok := commons.NormalizeName(rawName)
	if !ok {
		return nil, apperrors.ErrBranchNameEmpty
	}

	if _, err := uc.franchiseRepo.FindByID(ctx, franchiseID); err != nil {
		return nil, err
	}

	existing, err := uc.branchRepo.FindByNameAndFranchiseID(ctx, name, franchiseID)
	if err != nil && !apperrors.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrBranchNameExists
	}

	created, err := uc.branchRepo.Save(ctx, domain.Branch{
		Name:        name,
		FranchiseID: franchiseID,
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("branch added",
		zap.Int64("branchId", created.ID),
		zap.Int64("franchiseId", franchiseID),
		zap.String("name", created.Name),
	)
	return &created, nil
}
