package product

import (
	"database/sql"

	branchrepo "franquicia/internal/branch/repository"
	"franquicia/internal/product/controller"
	"franquicia/internal/product/repository"
	"franquicia/internal/product/usecase"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.ProductController {
	productRepo := repository.NewMySQLProductRepository(db)
	branchRepo := branchrepo.NewMySQLBranchRepository(db)

	addUC := usecase.NewAddProductUseCase(productRepo, branchRepo, logger)
	removeUC := usecase.NewRemoveProductUseCase(productRepo, branchRepo, logger)
	updateNameUC := usecase.NewUpdateProductNameUseCase(productRepo, logger)
	updateStockUC := usecase.NewUpdateProductStockUseCase(productRepo, logger)

	return controller.NewProductController(addUC, removeUC, updateNameUC, updateStockUC, logger)
}
