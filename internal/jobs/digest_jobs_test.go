package jobs

import (
	"context"
	"io"
	"testing"

	"cycleclub-backend/internal/config"
	"cycleclub-backend/internal/domain"
	"cycleclub-backend/internal/lifecycle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

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

type mockRegistrationService struct {
	mock.Mock
}

func (m *mockRegistrationService) Submit(ctx context.Context, userID string, draft domain.Draft, file io.Reader) (*domain.Registration, error) {
	args := m.Called(ctx, userID, draft, file)
	if reg := args.Get(0); reg != nil {
		return reg.(*domain.Registration), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRegistrationService) GetForUser(ctx context.Context, userID string) (*domain.Registration, error) {
	args := m.Called(ctx, userID)
	if reg := args.Get(0); reg != nil {
		return reg.(*domain.Registration), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRegistrationService) List(ctx context.Context, opts lifecycle.FilterOptions) ([]domain.Registration, error) {
	args := m.Called(ctx, opts)
	if regs := args.Get(0); regs != nil {
		return regs.([]domain.Registration), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRegistrationService) UpdateStatus(ctx context.Context, actorEmail, id string, status domain.RegistrationStatus) (*domain.Registration, error) {
	args := m.Called(ctx, actorEmail, id, status)
	if reg := args.Get(0); reg != nil {
		return reg.(*domain.Registration), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRegistrationService) Stats(ctx context.Context) (domain.Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Stats), args.Error(1)
}

func (m *mockRegistrationService) Tiers() []domain.Tier {
	args := m.Called()
	return args.Get(0).([]domain.Tier)
}

func TestSendDailyDigest(t *testing.T) {
	cfg := &config.Config{}
	cfg.Admin.Emails = []string{"one@example.com", "two@example.com"}
	stats := domain.Stats{Total: 3, TotalRevenue: 997}

	t.Run("SendsToEveryAdmin", func(t *testing.T) {
		regSvc := new(mockRegistrationService)
		regSvc.On("Stats", mock.Anything).Return(stats, nil)

		emailSvc := new(mockEmailService)
		emailSvc.On("SendAdminDigest", mock.Anything, "one@example.com", stats).Return(nil)
		emailSvc.On("SendAdminDigest", mock.Anything, "two@example.com", stats).Return(nil)

		runner := NewJobRunner(&Services{Email: emailSvc, Registration: regSvc}, cfg)
		runner.SendDailyDigest()

		emailSvc.AssertExpectations(t)
	})

	t.Run("ContinuesPastFailures", func(t *testing.T) {
		regSvc := new(mockRegistrationService)
		regSvc.On("Stats", mock.Anything).Return(stats, nil)

		emailSvc := new(mockEmailService)
		emailSvc.On("SendAdminDigest", mock.Anything, "one@example.com", stats).Return(assert.AnError)
		emailSvc.On("SendAdminDigest", mock.Anything, "two@example.com", stats).Return(nil)

		runner := NewJobRunner(&Services{Email: emailSvc, Registration: regSvc}, cfg)
		runner.SendDailyDigest()

		emailSvc.AssertNumberOfCalls(t, "SendAdminDigest", 2)
	})

	t.Run("StatsFailureSendsNothing", func(t *testing.T) {
		regSvc := new(mockRegistrationService)
		regSvc.On("Stats", mock.Anything).Return(domain.Stats{}, assert.AnError)

		emailSvc := new(mockEmailService)

		runner := NewJobRunner(&Services{Email: emailSvc, Registration: regSvc}, cfg)
		runner.SendDailyDigest()

		emailSvc.AssertNotCalled(t, "SendAdminDigest", mock.Anything, mock.Anything, mock.Anything)
	})
}
