// Package web contiene los helpers de respuesta HTTP compartidos por los
// controllers: todos emiten el mismo contrato de error {code, message,
// traceId}.
package web

import (
	"encoding/json"
	"net/http"

	apperrors "franquicia/internal/errors"

	"go.uber.org/zap"
)

type ErrorResponse struct {
	Code    string                       `json:"code"`
	Message string                       `json:"message"`
	TraceID string                       `json:"traceId,omitempty"`
	Details []apperrors.ValidationDetail `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

func WriteBusinessError(w http.ResponseWriter, traceID string, status int, be *apperrors.BusinessError, logger *zap.Logger) {
	WriteJSON(w, status, ErrorResponse{
		Code:    be.Code,
		Message: be.Message,
		TraceID: traceID,
	}, logger)
}

// HandleUseCaseError traduce un error del caso de uso al código HTTP según
// su categoría: not-found 404, conflicto 409, resto de errores de negocio
// 400. Cualquier otro error se registra y responde 500 con cuerpo genérico.
func HandleUseCaseError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if be, ok := apperrors.IsBusinessError(err); ok {
		status := http.StatusBadRequest
		switch be.Category {
		case apperrors.CategoryNotFound:
			status = http.StatusNotFound
		case apperrors.CategoryConflict:
			status = http.StatusConflict
		}
		logger.Warn("business error", zap.String("code", be.Code), zap.String("message", be.Message))
		WriteBusinessError(w, traceID, status, be, logger)
		return
	}

	if ve, ok := apperrors.IsValidationError(err); ok {
		WriteJSON(w, http.StatusBadRequest, ErrorResponse{
			Code:    apperrors.ErrRequiredFieldMissing.Code,
			Message: ve.Message,
			TraceID: traceID,
			Details: ve.Details,
		}, logger)
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	WriteBusinessError(w, traceID, http.StatusInternalServerError, apperrors.ErrInternal, logger)
}
