package franchise

import (
	"database/sql"

	branchrepo "franquicia/internal/branch/repository"
	"franquicia/internal/franchise/controller"
	"franquicia/internal/franchise/repository"
	"franquicia/internal/franchise/usecase"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.FranchiseController {
	franchiseRepo := repository.NewMySQLFranchiseRepository(db)
	branchRepo := branchrepo.NewMySQLBranchRepository(db)

	createUC := usecase.NewCreateFranchiseUseCase(franchiseRepo, logger)
	updateNameUC := usecase.NewUpdateFranchiseNameUseCase(franchiseRepo, logger)
	maxStockUC := usecase.NewGetMaxStockProductsUseCase(franchiseRepo, branchRepo, logger)

	return controller.NewFranchiseController(createUC, updateNameUC, maxStockUC, logger)
}
