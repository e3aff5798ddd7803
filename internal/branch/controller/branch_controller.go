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

type AddBranchUseCase interface {
	Execute(ctx context.Context, franchiseID int64, name string) (*domain.Branch, error)
}

type UpdateBranchNameUseCase interface {
	Execute(ctx context.Context, branchID int64, name string) (*domain.Branch, error)
}

type BranchController struct {
	addUC        AddBranchUseCase
	updateNameUC UpdateBranchNameUseCase
	logger       *zap.Logger
}

func NewBranchController(addUC AddBranchUseCase, updateNameUC UpdateBranchNameUseCase, logger *zap.Logger) *BranchController {
	return &BranchController{
		addUC:        addUC,
		updateNameUC: updateNameUC,
		logger:       logger,
	}
}

type branchRequest struct {
	Name string `json:"name"`
}

type branchResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FranchiseID int64  `json:"franchiseId"`
}

func (c *BranchController) Add(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	franchiseID, err := strconv.ParseInt(chi.URLParam(r, "franchiseId"), 10, 64)
	if err != nil {
		logger.Warn("invalid franchiseId in path", zap.Error(err))
		web.WriteBusinessError(w, traceID, http.StatusBadRequest, apperrors.ErrInvalidID, logger)
		return
	}

	var req branchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		web.WriteBusinessError(w, traceID, http.StatusBadRequest, apperrors.ErrRequiredFieldMissing, logger)
		return
	}

	branch, err := c.addUC.Execute(r.Context(), franchiseID, req.Name)
	if err != nil {
		web.HandleUseCaseError(w, traceID, err, logger)
		return
	}

	web.WriteJSON(w, http.StatusCreated, branchResponse{
		ID:          branch.ID,
		Name:        branch.Name,
		FranchiseID: branch.FranchiseID,
	}, logger)
}

func (c *BranchController) UpdateName(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	branchID, err := strconv.ParseInt(chi.URLParam(r, "branchId"), 10, 64)
	if err != nil {
		logger.Warn("invalid branchId in path", zap.Error(err))
		web.WriteBusinessError(w, traceID, http.StatusBadRequest, apperrors.ErrInvalidID, logger)
		return
	}

	var req branchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		web.WriteBusinessError(w, traceID, http.StatusBadRequest, apperrors.ErrRequiredFieldMissing, logger)
		return
	}

	branch, err := c.updateNameUC.Execute(r.Context(), branchID, req.Name)
	if err != nil {
		web.HandleUseCaseError(w, traceID, err, logger)
		return
	}

	web.WriteJSON(w, http.StatusOK, branchResponse{
		ID:          branch.ID,
		Name:        branch.Name,
		FranchiseID: branch.FranchiseID,
	}, logger)
}
