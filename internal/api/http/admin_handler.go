package http

import (
	"encoding/json"
	"net/http"

	"cycleclub-backend/internal/domain"
	"cycleclub-backend/internal/lifecycle"
	"cycleclub-backend/internal/service"

	"github.com/gorilla/mux"
)

// AdminHandler serves the review panel: listing, status updates, stats.
type AdminHandler struct {
	regSvc service.RegistrationService
}

func NewAdminHandler(regSvc service.RegistrationService) *AdminHandler {
	return &AdminHandler{regSvc: regSvc}
}

func (h *AdminHandler) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := lifecycle.FilterOptions{
		Search: q.Get("search"),
		Status: q.Get("status"),
		Tier:   q.Get("tier"),
	}

	regs, err := h.regSvc.List(r.Context(), opts)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if regs == nil {
		regs = []domain.Registration{}
	}

	writeJSON(w, http.StatusOK, regs)
}

func (h *AdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id := mux.Vars(r)["id"]

	var req struct {
		Status domain.RegistrationStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reg, err := h.regSvc.UpdateStatus(r.Context(), claims.Email, id, req.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reg)
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.regSvc.Stats(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
