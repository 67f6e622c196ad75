// Package lifecycle owns the registration state machine and aggregate
// reporting. Everything here is a pure function of its inputs: callers
// supply the current registrations and persist the returned state
// themselves.
package lifecycle

import (
	"errors"
	"math"
	"strings"
	"time"

	"cycleclub-backend/internal/domain"
	"cycleclub-backend/internal/validation"

	"github.com/google/uuid"
)

var (
	ErrInvalidDraft      = errors.New("draft failed validation")
	ErrUnauthorized      = errors.New("administrator capability required")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// CanSubmit reports whether the user may create a registration: true only
// when they have none yet. This is the client-side half of duplicate
// prevention; the database unique constraint on user_id is the backstop.
func CanSubmit(userID string, existing []domain.Registration) bool {
	for _, r := range existing {
		if r.UserID == userID {
			return false
		}
	}
	return true
}

// UploadedFile is the stored screenshot reference returned by object storage.
type UploadedFile struct {
	URL  string
	Name string
}

// NewRegistration assembles a pending registration from a validated draft.
// The draft is re-validated defensively; a draft that would not pass
// ValidateDraft yields ErrInvalidDraft. Conditional fields the tier does not
// require are blanked so the stored record honors the tier invariants even
// when the form carried stray values.
func NewRegistration(catalog *domain.Catalog, d domain.Draft, userID string, file UploadedFile, now time.Time) (*domain.Registration, error) {
	if errs := validation.ValidateDraft(catalog, d); len(errs) > 0 {
		return nil, ErrInvalidDraft
	}

	tier, err := catalog.Get(d.Tier)
	if err != nil {
		return nil, ErrInvalidDraft
	}

	deliveryAddress := ""
	if tier.RequiresDeliveryAddress {
		deliveryAddress = strings.TrimSpace(d.DeliveryAddress)
	}
	tshirtSize := ""
	if tier.RequiresTshirtSize {
		tshirtSize = strings.TrimSpace(d.TshirtSize)
	}

	return &domain.Registration{
		ID:                    uuid.NewString(),
		UserID:                userID,
		FullName:              strings.TrimSpace(d.FullName),
		MobileNumber:          strings.TrimSpace(d.MobileNumber),
		EmailAddress:          strings.TrimSpace(d.EmailAddress),
		FullAddress:           strings.TrimSpace(d.FullAddress),
		Gender:                strings.TrimSpace(d.Gender),
		StravaProfileLink:     strings.TrimSpace(d.StravaProfileLink),
		TshirtSize:            tshirtSize,
		DeliveryAddress:       deliveryAddress,
		PaymentScreenshotURL:  file.URL,
		PaymentScreenshotName: file.Name,
		WhereHeard:            strings.TrimSpace(d.WhereHeard),
		PaymentTier:           tier.ID,
		Status:                domain.StatusPending,
		CreatedAt:             now,
		UpdatedAt:             now,
	}, nil
}

// Transition returns a copy of reg with the new status applied. Only an
// administrator may transition, only from pending, and only to approved or
// rejected; approved and rejected are terminal. The caller persists the
// returned copy; reg itself is never mutated.
func Transition(reg domain.Registration, newStatus domain.RegistrationStatus, isAdmin bool, now time.Time) (domain.Registration, error) {
	if !isAdmin {
		return reg, ErrUnauthorized
	}
	if reg.Status != domain.StatusPending {
		return reg, ErrInvalidTransition
	}
	if newStatus != domain.StatusApproved && newStatus != domain.StatusRejected {
		return reg, ErrInvalidTransition
	}

	reg.Status = newStatus
	reg.UpdatedAt = now
	return reg, nil
}

// ComputeStats aggregates counts, revenue, and tier distribution over the
// given registrations. Revenue counts approved registrations only, priced by
// the catalog. An empty input yields all-zero stats.
func ComputeStats(catalog *domain.Catalog, regs []domain.Registration) domain.Stats {
	var stats domain.Stats
	stats.Total = len(regs)

	for _, r := range regs {
		switch r.Status {
		case domain.StatusPending:
			stats.ByStatus.Pending++
		case domain.StatusApproved:
			stats.ByStatus.Approved++
		case domain.StatusRejected:
			stats.ByStatus.Rejected++
		}

		if r.Status != domain.StatusApproved {
			continue
		}
		tier, err := catalog.Get(r.PaymentTier)
		if err != nil {
			continue
		}
		switch tier.ID {
		case domain.TierBasic:
			stats.RevenueByTier.Basic += tier.PriceRupees
			stats.ApprovedByTier.Basic++
		case domain.TierPlus:
			stats.RevenueByTier.Plus += tier.PriceRupees
			stats.ApprovedByTier.Plus++
		case domain.TierPremium:
			stats.RevenueByTier.Premium += tier.PriceRupees
			stats.ApprovedByTier.Premium++
		}
	}

	stats.TotalRevenue = stats.RevenueByTier.Basic + stats.RevenueByTier.Plus + stats.RevenueByTier.Premium

	approvedTotal := stats.ApprovedByTier.Basic + stats.ApprovedByTier.Plus + stats.ApprovedByTier.Premium
	if approvedTotal > 0 {
		stats.TierPercentages.Basic = percent(stats.ApprovedByTier.Basic, approvedTotal)
		stats.TierPercentages.Plus = percent(stats.ApprovedByTier.Plus, approvedTotal)
		stats.TierPercentages.Premium = percent(stats.ApprovedByTier.Premium, approvedTotal)
	}

	return stats
}

func percent(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}

// FilterOptions narrows a registration listing. Empty or "all" values match
// everything for that dimension.
type FilterOptions struct {
	Search string
	Status string
	Tier   string
}

// Filter returns the registrations matching all three criteria, preserving
// input order. The search term matches case-insensitively against full name,
// email address, and mobile number.
func Filter(regs []domain.Registration, opts FilterOptions) []domain.Registration {
	search := strings.ToLower(strings.TrimSpace(opts.Search))
	out := make([]domain.Registration, 0, len(regs))
	for _, r := range regs {
		if opts.Status != "" && opts.Status != "all" && string(r.Status) != opts.Status {
			continue
		}
		if opts.Tier != "" && opts.Tier != "all" && string(r.PaymentTier) != opts.Tier {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(r.FullName), search) &&
			!strings.Contains(strings.ToLower(r.EmailAddress), search) &&
			!strings.Contains(r.MobileNumber, search) {
			continue
		}
		out = append(out, r)
	}
	return out
}
