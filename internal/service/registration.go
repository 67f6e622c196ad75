package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"cycleclub-backend/internal/domain"
	"cycleclub-backend/internal/lifecycle"
	"cycleclub-backend/internal/logger"
	"cycleclub-backend/internal/repository"
	"cycleclub-backend/internal/storage"
	"cycleclub-backend/internal/validation"
)

type registrationService struct {
	regRepo  repository.RegistrationRepository
	catalog  *domain.Catalog
	store    storage.Storage
	emailSvc EmailService
	auth     AuthService
}

func NewRegistrationService(
	regRepo repository.RegistrationRepository,
	catalog *domain.Catalog,
	store storage.Storage,
	emailSvc EmailService,
	auth AuthService,
) RegistrationService {
	return &registrationService{
		regRepo:  regRepo,
		catalog:  catalog,
		store:    store,
		emailSvc: emailSvc,
		auth:     auth,
	}
}

func (s *registrationService) Submit(ctx context.Context, userID string, draft domain.Draft, file io.Reader) (*domain.Registration, error) {
	logger.EnterMethod("registrationService.Submit", "user_id", userID)

	// Pre-check before touching storage; the DB unique constraint on
	// user_id remains the authoritative backstop for racing submissions.
	var existing []domain.Registration
	prior, err := s.regRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrRegistrationNotFound) {
		return nil, err
	}
	if prior != nil {
		existing = append(existing, *prior)
	}
	if !lifecycle.CanSubmit(userID, existing) {
		logger.ExitMethod("registrationService.Submit", "user_id", userID, "duplicate", true)
		return nil, domain.ErrAlreadyRegistered
	}

	if errs := validation.ValidateDraft(s.catalog, draft); len(errs) > 0 {
		return nil, errs
	}

	// Key scheme: payment-screenshots/{userID}_{millis}{ext}
	ext := filepath.Ext(draft.File.Name)
	fileName := fmt.Sprintf("%s_%d%s", userID, time.Now().UnixMilli(), ext)
	key := "payment-screenshots/" + fileName

	url, err := s.store.Upload(ctx, key, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload payment screenshot: %w", err)
	}

	reg, err := lifecycle.NewRegistration(s.catalog, draft, userID, lifecycle.UploadedFile{URL: url, Name: fileName}, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.regRepo.Create(ctx, reg); err != nil {
		// Orphaned screenshot cleanup on insert failure.
		_ = s.store.Delete(ctx, key)
		return nil, err
	}

	if tier, terr := s.catalog.Get(reg.PaymentTier); terr == nil {
		if err := s.emailSvc.SendSubmissionConfirmation(ctx, reg.EmailAddress, reg.FullName, tier); err != nil {
			logger.Warn("Failed to send submission confirmation", "email", reg.EmailAddress, "error", err)
		}
	}

	logger.ExitMethod("registrationService.Submit", "user_id", userID, "registration_id", reg.ID)
	return reg, nil
}

func (s *registrationService) GetForUser(ctx context.Context, userID string) (*domain.Registration, error) {
	return s.regRepo.GetByUserID(ctx, userID)
}

func (s *registrationService) List(ctx context.Context, opts lifecycle.FilterOptions) ([]domain.Registration, error) {
	regs, err := s.regRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return lifecycle.Filter(regs, opts), nil
}

func (s *registrationService) UpdateStatus(ctx context.Context, actorEmail, id string, status domain.RegistrationStatus) (*domain.Registration, error) {
	logger.EnterMethod("registrationService.UpdateStatus", "id", id, "status", status)

	reg, err := s.regRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := lifecycle.Transition(*reg, status, s.auth.IsAdministrator(actorEmail), time.Now())
	if err != nil {
		logger.ExitMethodWithError("registrationService.UpdateStatus", err, "id", id)
		return nil, err
	}

	if err := s.regRepo.UpdateStatus(ctx, updated.ID, updated.Status); err != nil {
		return nil, err
	}

	if err := s.emailSvc.SendStatusNotification(ctx, updated.EmailAddress, updated.FullName, updated.Status); err != nil {
		logger.Warn("Failed to send status notification", "email", updated.EmailAddress, "error", err)
	}

	logger.ExitMethod("registrationService.UpdateStatus", "id", id, "status", updated.Status)
	return &updated, nil
}

func (s *registrationService) Stats(ctx context.Context) (domain.Stats, error) {
	regs, err := s.regRepo.ListAll(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	return lifecycle.ComputeStats(s.catalog, regs), nil
}

func (s *registrationService) Tiers() []domain.Tier {
	return s.catalog.List()
}
