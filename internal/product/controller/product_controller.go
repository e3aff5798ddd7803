package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"franquicia/internal/commons/web"
	"franquicia/internal/domain"
	apperrors "franquicia/internal/errors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AddProductUseCase interface {
	Execute(ctx context.Context, branchID int64, name string, stock int) (*domain.Product, error)
}

type RemoveProductUseCase interface {
	Execute(ctx context.Context, branchID, productID int64) error
}

type UpdateProductNameUseCase interface {
	Execute(ctx context.Context, productID int64, name string) (*domain.Product, error)
}

type UpdateProductStockUseCase interface {
	Execute(ctx context.Context, productID int64, stock int) (*domain.Product, error)
}

type ProductController struct {
	addUC         AddProductUseCase
	removeUC      RemoveProductUseCase
	updateNameUC  UpdateProductNameUseCase
	updateStockUC UpdateProductStockUseCase
	logger        *zap.Logger
}

func NewProductController(
	addUC AddProductUseCase,
	removeUC RemoveProductUseCase,
	updateNameUC UpdateProductNameUseCase,
	updateStockUC UpdateProductStockUseCase,
	logger *zap.Logger,
) *ProductController {
	return &ProductController{
		addUC:         addUC,
		removeUC:      removeUC,
		updateNameUC:  updateNameUC,
		updateStockUC: updateStockUC,
		logger:        logger,
	}
}

type productRequest struct {
	Name  string `json:"name"`
	Stock *int   `json:"stock"`
}

type updateNameRequest struct {
	Name string `json:"name"`
}

type updateStockRequest struct {
	Stock *int `json:"stock"`
}

type productResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Stock    int    `json:"stock"`
	BranchID int64  `json:"branchId"`
}

func (c *ProductController) Add(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	branchID, err := strconv.ParseInt(chi.URLParam(r, "branchId"), 10, 64)
	if err != nil {
		logger.Warn("invalid branchId in path", zap.Error(err))
		web.WriteBusinessError(w, traceID, http.StatusBadRequest, apperrors.ErrInvalidID, logger)
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		web.WriteBusinessError(w, traceID, http.StatusBadRequest, apperrors.ErrRequiredFieldMissing, logger)
		return
	}
	if req.Stock == nil {
		web.WriteBusinessError(w, traceID, http.StatusBadRequest, apperrors.ErrRequiredFieldMissing, logger)
		return
	}

	product, err := c.addUC.Execute(r.Context(), branchID, req.Name, *req.Stock)
	if err != nil {
		web.HandleUseCaseError(w, traceID, err, logger)
		return
	}

	web.WriteJSON(w, http.StatusCreated, productResponse{
		ID:       product.ID,
		Name:     product.Name,
		Stock:    product.Stock,
		BranchID: product.BranchID,
	}, logger)
}

func (c *ProductController) Remove(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	branchID, err := strconv.ParseInt(chi.URLParam(r, "branchId"), 10, 64)
	if err != nil {
		logger.Warn("invalid branchId in path", zap.Error(err))
		web.WriteBusinessError(w, traceID, http.StatusBadRequest, apperrors.ErrInvalidID, logger)
		return
	}

	productID, err := strconv.ParseInt(chi.URLParam(r, "productId"), 10, 64)
	if err != nil {
		logger.Warn("invalid productId in path", zap.Error(err))
		web.WriteBusinessError(w, traceID, http.StatusBadRequest, apperrors.ErrInvalidID, logger)
		return
	}

	if err := c.removeUC.Execute(r.Context(), branchID, productID); err != nil {
		web.HandleUseCaseError(w, traceID, err, logger)
		return
	}

	web.WriteJSON(w, http.StatusNoContent, nil, logger)
}

func (c *ProductController) UpdateName(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	productID, err := strconv.ParseInt(chi.URLParam(r, "productId"), 10, 64)
	if err != nil {
		logger.Warn("invalid productId in path", zap.Error(err))
		web.WriteBusinessError(w, traceID, http.StatusBadRequest, apperrors.ErrInvalidID, logger)
		return
	}

	var req updateNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		web.WriteBusinessError(w, traceID, http.StatusBadRequest, apperrors.ErrRequiredFieldMissing, logger)
		return
	}

	product, err := c.updateNameUC.Execute(r.Context(), productID, req.Name)
	if err != nil {
		web.HandleUseCaseError(w, traceID, err, logger)
		return
	}

	web.WriteJSON(w, http.StatusOK, productResponse{
		ID:       product.ID,
		Name:     product.Name,
		Stock:    product.Stock,
		BranchID: product.BranchID,
	}, logger)
}

func (c *ProductController) UpdateStock(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	productID, err := strconv.ParseInt(chi.URLParam(r, "productId"), 10, 64)
	if err != nil {
		logger.Warn("invalid productId in path", zap.Error(err))
		web.WriteBusinessError(w, traceID, http.StatusBadRequest, apperrors.ErrInvalidID, logger)
		return
	}

	var req updateStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		web.WriteBusinessError(w, traceID, http.StatusBadRequest, apperrors.ErrRequiredFieldMissing, logger)
		return
	}
	if req.Stock == nil {
		web.WriteBusinessError(w, traceID, http.StatusBadRequest, apperrors.ErrRequiredFieldMissing, logger)
		return
	}

	product, err := c.updateStockUC.Execute(r.Context(), productID, *req.Stock)
	if err != nil {
		web.HandleUseCaseError(w, traceID, err, logger)
		return
	}

	web.WriteJSON(w, http.StatusOK, productResponse{
		ID:       product.ID,
		Name:     product.Name,
		Stock:    product.Stock,
		BranchID: product.BranchID,
	}, logger)
}
