package http

import (
	"io"
	"net/http"

	"cycleclub-backend/internal/domain"
	"cycleclub-backend/internal/service"
	"cycleclub-backend/internal/validation"
)

// maxSubmitBytes caps the whole multipart body: the 10 MiB screenshot limit
// plus headroom for form fields.
const maxSubmitBytes = validation.MaxFileSize + 1<<20

// RegistrationHandler serves the registrant-facing endpoints.
type RegistrationHandler struct {
	regSvc service.RegistrationService
}

func NewRegistrationHandler(regSvc service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{regSvc: regSvc}
}

// ListTiers is public: the form needs prices before signin.
func (h *RegistrationHandler) ListTiers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.regSvc.Tiers())
}

// Submit accepts the registration form as multipart/form-data with the
// payment screenshot in the "paymentFile" part.
func (h *RegistrationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxSubmitBytes)
	if err := r.ParseMultipartForm(maxSubmitBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	draft := domain.Draft{
		FullName:          r.FormValue("fullName"),
		MobileNumber:      r.FormValue("mobileNumber"),
		EmailAddress:      claims.Email, // locked to the authenticated account
		FullAddress:       r.FormValue("fullAddress"),
		Gender:            r.FormValue("gender"),
		StravaProfileLink: r.FormValue("stravaProfileLink"),
		TshirtSize:        r.FormValue("tshirtSize"),
		DeliveryAddress:   r.FormValue("deliveryAddress"),
		WhereHeard:        r.FormValue("whereHeard"),
		Tier:              domain.TierID(r.FormValue("paymentTier")),
	}

	var reader io.Reader
	if file, header, err := r.FormFile("paymentFile"); err == nil {
		defer file.Close()
		reader = file
		draft.File = &domain.FileRef{
			Name:        header.Filename,
			Size:        header.Size,
			ContentType: header.Header.Get("Content-Type"),
		}
	}

	reg, err := h.regSvc.Submit(r.Context(), claims.UserID, draft, reader)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, reg)
}

// Me returns the signed-in user's registration, or 404 before they submit.
func (h *RegistrationHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	reg, err := h.regSvc.GetForUser(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reg)
}
