package service

import (
	"context"
	"io"

	"cycleclub-backend/internal/domain"
	"cycleclub-backend/internal/security"

	"github.com/stretchr/testify/mock"
)

type mockRegistrationRepo struct {
	mock.Mock
}

func (m *mockRegistrationRepo) Create(ctx context.Context, reg *domain.Registration) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}

func (m *mockRegistrationRepo) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	args := m.Called(ctx, id)
	if reg := args.Get(0); reg != nil {
		return reg.(*domain.Registration), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRegistrationRepo) GetByUserID(ctx context.Context, userID string) (*domain.Registration, error) {
	args := m.Called(ctx, userID)
	if reg := args.Get(0); reg != nil {
		return reg.(*domain.Registration), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRegistrationRepo) ListAll(ctx context.Context) ([]domain.Registration, error) {
	args := m.Called(ctx)
	if regs := args.Get(0); regs != nil {
		return regs.([]domain.Registration), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRegistrationRepo) UpdateStatus(ctx context.Context, id string, status domain.RegistrationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) Upload(ctx context.Context, key string, reader io.Reader) (string, error) {
	args := m.Called(ctx, key, reader)
	return args.String(0), args.Error(1)
}

func (m *mockStorage) PublicURL(key string) string {
	args := m.Called(key)
	return args.String(0)
}

func (m *mockStorage) Open(key string) (io.ReadCloser, error) {
	args := m.Called(key)
	if rc := args.Get(0); rc != nil {
		return rc.(io.ReadCloser), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type mockEmailService struct {
	mock.Mock
}

func (m *mockEmailService) SendSubmissionConfirmation(ctx context.Context, email, name string, tier domain.Tier) error {
	args := m.Called(ctx, email, name, tier)
	return args.Error(0)
}

func (m *mockEmailService) SendStatusNotification(ctx context.Context, email, name string, status domain.RegistrationStatus) error {
	args := m.Called(ctx, email, name, status)
	return args.Error(0)
}

func (m *mockEmailService) SendAdminDigest(ctx context.Context, email string, stats domain.Stats) error {
	args := m.Called(ctx, email, stats)
	return args.Error(0)
}

type mockTokenManager struct {
	mock.Mock
}

func (m *mockTokenManager) GenerateAccessToken(userID, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}

func (m *mockTokenManager) GenerateRefreshToken(userID, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}

func (m *mockTokenManager) ValidateToken(token string) (*security.UserClaims, error) {
	args := m.Called(token)
	if claims := args.Get(0); claims != nil {
		return claims.(*security.UserClaims), args.Error(1)
	}
	return nil, args.Error(1)
}
