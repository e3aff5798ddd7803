package usecase

import (
	"context"

	"franquicia/internal/commons"
	"franquicia/internal/domain"
	apperrors "franquicia/internal/errors"

	"go.uber.org/zap"
)

type UpdateBranchNameUseCase struct {
	branchRepo BranchRepository
	logger     *zap.Logger
}

func NewUpdateBranchNameUseCase(branchRepo BranchRepository, logger *zap.Logger) *UpdateBranchNameUseCase {
	return &UpdateBranchNameUseCase{
		branchRepo: branchRepo,
		logger:     logger,
	}
}

// Execute renombra una sucursal. La unicidad del nuevo nombre se evalúa
// dentro de la franquicia dueña; renombrar al nombre actual es válido.
func (uc *UpdateBranchNameUseCase) Execute(ctx context.Context, branchID int64, rawName string) (*domain.Branch, error) {
	name, ok := commons.NormalizeName(rawName)
	if !ok {
		return nil, apperrors.ErrBranchNameEmpty
	}

	branch, err := uc.branchRepo.FindByID(ctx, branchID)
	if err != nil {
		return nil, err
	}

	holder, err := uc.branchRepo.FindByNameAndFranchiseID(ctx, name, branch.FranchiseID)
	if err != nil && !apperrors.IsNotFound(err) {
		return nil, err
	}
	if holder != nil && holder.ID != branchID {
		return nil, apperrors.ErrBranchNameDuplicate
	}

	if err := uc.branchRepo.UpdateName(ctx, branchID, name); err != nil {
		return nil, err
	}

	uc.logger.Info("branch renamed", zap.Int64("branchId", branchID), zap.String("name", name))

	branch.Name = name
	return branch, nil
}
