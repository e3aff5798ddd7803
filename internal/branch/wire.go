package branch

import (
	"database/sql"

	"franquicia/internal/branch/controller"
	"franquicia/internal/branch/repository"
	"franquicia/internal/branch/usecase"
	franchiserepo "franquicia/internal/franchise/repository"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.BranchController {
	branchRepo := repository.NewMySQLBranchRepository(db)
	franchiseRepo := franchiserepo.NewMySQLFranchiseRepository(db)

	addUC := usecase.NewAddBranchUseCase(branchRepo, franchiseRepo, logger)
	updateNameUC := usecase.NewUpdateBranchNameUseCase(branchRepo, logger)

	return controller.NewBranchController(addUC, updateNameUC, logger)
}
