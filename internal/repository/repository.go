package repository

import (
	"context"

	"cycleclub-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type RegistrationRepository interface {
	Create(ctx context.Context, reg *domain.Registration) error
	GetByID(ctx context.Context, id string) (*domain.Registration, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Registration, error)
	ListAll(ctx context.Context) ([]domain.Registration, error)
	UpdateStatus(ctx context.Context, id string, status domain.RegistrationStatus) error
}
