package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/a2sh3r/groupmart/internal/apperrors"
	"github.com/a2sh3r/groupmart/internal/logger"
	"github.com/a2sh3r/groupmart/internal/middleware"
	"github.com/a2sh3r/groupmart/internal/models"
	"go.uber.org/zap"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

var codeStatus = map[string]int{
	apperrors.CodeInvalidInput:        http.StatusUnprocessableEntity,
	apperrors.CodeNotFound:            http.StatusNotFound,
	apperrors.CodeAlreadyHandled:      http.StatusConflict,
	apperrors.CodeInsufficientBalance: http.StatusPaymentRequired,
	apperrors.CodeForbidden:           http.StatusForbidden,
	apperrors.CodePersistence:         http.StatusServiceUnavailable,
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := apperrors.Code(err)
	status, ok := codeStatus[code]
	if !ok {
		logger.Log.Error("internal error", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   apperrors.CodeInternal,
			Message: apperrors.ErrInternalServer.Error(),
		})
		return
	}
	if code == apperrors.CodePersistence {
		logger.Log.Error("persistence failure", zap.Error(err))
	}
	writeJSON(w, status, errorResponse{Error: code, Message: err.Error()})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   apperrors.CodeInvalidInput,
			Message: apperrors.ErrInvalidRequest.Error(),
		})
		return false
	}
	return true
}

func actorFrom(w http.ResponseWriter, r *http.Request) (models.Actor, bool) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}
	return actor, ok
}
