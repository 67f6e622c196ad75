package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"cycleclub-backend/internal/domain"
	"cycleclub-backend/internal/lifecycle"
	"cycleclub-backend/internal/logger"
	"cycleclub-backend/internal/security"
	"cycleclub-backend/internal/service"
	"cycleclub-backend/internal/validation"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps domain and service errors onto HTTP statuses.
// Validation failures carry the full violation list so the form can render
// every problem at once.
func writeServiceError(w http.ResponseWriter, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "validation failed",
			"errors": verrs,
		})
	case errors.Is(err, domain.ErrAlreadyRegistered):
		writeError(w, http.StatusConflict, "you have already registered")
	case errors.Is(err, domain.ErrRegistrationNotFound):
		writeError(w, http.StatusNotFound, "registration not found")
	case errors.Is(err, domain.ErrUnknownTier):
		writeError(w, http.StatusBadRequest, "unknown payment tier")
	case errors.Is(err, lifecycle.ErrUnauthorized):
		writeError(w, http.StatusForbidden, "administrator access required")
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		writeError(w, http.StatusConflict, "registration is no longer pending")
	case errors.Is(err, lifecycle.ErrInvalidDraft):
		writeError(w, http.StatusBadRequest, "submission failed validation")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, service.ErrEmailTaken):
		writeError(w, http.StatusConflict, "an account with this email already exists")
	case errors.Is(err, security.ErrInvalidToken), errors.Is(err, security.ErrExpiredToken), errors.Is(err, security.ErrWrongTokenType):
		writeError(w, http.StatusUnauthorized, "invalid or expired token")
	default:
		logger.Error("Request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
