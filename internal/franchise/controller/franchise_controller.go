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

type CreateFranchiseUseCase interface {
	Execute(ctx context.Context, name string) (*domain.Franchise, error)
}

type UpdateFranchiseNameUseCase interface {
	Execute(ctx context.Context, franchiseID int64, name string) (*domain.Franchise, error)
}

type GetMaxStockProductsUseCase interface {
	Execute(ctx context.Context, franchiseID int64) (*domain.FranchiseWithTopProducts, error)
}

type FranchiseController struct {
	createUC     CreateFranchiseUseCase
	updateNameUC UpdateFranchiseNameUseCase
	maxStockUC   GetMaxStockProductsUseCase
	logger       *zap.Logger
}

func NewFranchiseController(
	createUC CreateFranchiseUseCase,
	updateNameUC UpdateFranchiseNameUseCase,
	maxStockUC GetMaxStockProductsUseCase,
	logger *zap.Logger,
) *FranchiseController {
	return &FranchiseController{
		createUC:     createUC,
		updateNameUC: updateNameUC,
		maxStockUC:   maxStockUC,
		logger:       logger,
	}
}

type franchiseRequest struct {
	Name string `json:"name"`
}

type franchiseResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type topProductResponse struct {
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	Stock       int    `json:"stock"`
}

type branchWithTopProductResponse struct {
	BranchID   int64               `json:"branchId"`
	BranchName string              `json:"branchName"`
	TopProduct *topProductResponse `json:"topProduct"`
}

type maxStockProductsResponse struct {
	FranchiseID   int64                          `json:"franchiseId"`
	FranchiseName string                         `json:"franchiseName"`
	Branches      []branchWithTopProductResponse `json:"branches"`
}

func (c *FranchiseController) Create(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req franchiseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		web.WriteBusinessError(w, traceID, http.StatusBadRequest, apperrors.ErrRequiredFieldMissing, logger)
		return
	}

	franchise, err := c.createUC.Execute(r.Context(), req.Name)
	if err != nil {
		web.HandleUseCaseError(w, traceID, err, logger)
		return
	}

	web.WriteJSON(w, http.StatusCreated, franchiseResponse{ID: franchise.ID, Name: franchise.Name}, logger)
}

func (c *FranchiseController) UpdateName(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	franchiseID, err := strconv.ParseInt(chi.URLParam(r, "franchiseId"), 10, 64)
	if err != nil {
		logger.Warn("invalid franchiseId in path", zap.Error(err))
		web.WriteBusinessError(w, traceID, http.StatusBadRequest, apperrors.ErrInvalidID, logger)
		return
	}

	var req franchiseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		web.WriteBusinessError(w, traceID, http.StatusBadRequest, apperrors.ErrRequiredFieldMissing, logger)
		return
	}

	franchise, err := c.updateNameUC.Execute(r.Context(), franchiseID, req.Name)
	if err != nil {
		web.HandleUseCaseError(w, traceID, err, logger)
		return
	}

	web.WriteJSON(w, http.StatusOK, franchiseResponse{ID: franchise.ID, Name: franchise.Name}, logger)
}

func (c *FranchiseController) GetMaxStockProducts(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	franchiseID, err := strconv.ParseInt(chi.URLParam(r, "franchiseId"), 10, 64)
	if err != nil {
		logger.Warn("invalid franchiseId in path", zap.Error(err))
		web.WriteBusinessError(w, traceID, http.StatusBadRequest, apperrors.ErrInvalidID, logger)
		return
	}

	view, err := c.maxStockUC.Execute(r.Context(), franchiseID)
	if err != nil {
		web.HandleUseCaseError(w, traceID, err, logger)
		return
	}

	branches := make([]branchWithTopProductResponse, len(view.Branches))
	for i, entry := range view.Branches {
		item := branchWithTopProductResponse{
			BranchID:   entry.Branch.ID,
			BranchName: entry.Branch.Name,
		}
		if entry.TopProduct != nil {
			item.TopProduct = &topProductResponse{
				ProductID:   entry.TopProduct.ID,
				ProductName: entry.TopProduct.Name,
				Stock:       entry.TopProduct.Stock,
			}
		}
		branches[i] = item
	}

	web.WriteJSON(w, http.StatusOK, maxStockProductsResponse{
		FranchiseID:   view.Franchise.ID,
		FranchiseName: view.Franchise.Name,
		Branches:      branches,
	}, logger)
}
