package service

import (
	"context"
	"io"

	"cycleclub-backend/internal/domain"
	"cycleclub-backend/internal/lifecycle"
)

type AuthService interface {
	Signup(ctx context.Context, email, password string) (*domain.User, string, string, error) // user, access, refresh
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	RefreshToken(ctx context.Context, refresh string) (string, string, error)

	// IsAdministrator reports whether the email is on the configured
	// admin allow-list.
	IsAdministrator(email string) bool
}

type RegistrationService interface {
	// Submit validates the draft, uploads the payment screenshot, and
	// persists a pending registration for the user. Validation failures
	// come back as validation.Errors; a second submission for the same
	// user fails with domain.ErrAlreadyRegistered.
	Submit(ctx context.Context, userID string, draft domain.Draft, file io.Reader) (*domain.Registration, error)

	GetForUser(ctx context.Context, userID string) (*domain.Registration, error)

	// List returns all registrations, newest first, narrowed by opts.
	List(ctx context.Context, opts lifecycle.FilterOptions) ([]domain.Registration, error)

	// UpdateStatus transitions a pending registration to approved or
	// rejected on behalf of actorEmail, which must be an administrator.
	UpdateStatus(ctx context.Context, actorEmail, id string, status domain.RegistrationStatus) (*domain.Registration, error)

	Stats(ctx context.Context) (domain.Stats, error)

	Tiers() []domain.Tier
}

type EmailService interface {
	SendSubmissionConfirmation(ctx context.Context, email, name string, tier domain.Tier) error
	SendStatusNotification(ctx context.Context, email, name string, status domain.RegistrationStatus) error
	SendAdminDigest(ctx context.Context, email string, stats domain.Stats) error
}
