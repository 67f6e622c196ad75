package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"cycleclub-backend/internal/domain"
	"cycleclub-backend/internal/logger"
	"cycleclub-backend/internal/repository"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type registrationRepository struct {
	db *sql.DB
}

func NewRegistrationRepository(db *sql.DB) repository.RegistrationRepository {
	return &registrationRepository{db: db}
}

const registrationColumns = `id, user_id, full_name, mobile_number, email_address, full_address, gender,
	strava_profile_link, tshirt_size, delivery_address, payment_screenshot_url, payment_screenshot_name,
	where_heard, payment_tier, registration_status, created_at, updated_at`

func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `INSERT INTO registrations (id, user_id, full_name, mobile_number, email_address, full_address, gender,
	          strava_profile_link, tshirt_size, delivery_address, payment_screenshot_url, payment_screenshot_name,
	          where_heard, payment_tier, registration_status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	logger.DatabaseCall("INSERT", "registrations", "user_id", reg.UserID)
	_, err := r.db.ExecContext(ctx, query,
		reg.ID, reg.UserID, reg.FullName, reg.MobileNumber, reg.EmailAddress, reg.FullAddress, reg.Gender,
		reg.StravaProfileLink, reg.TshirtSize, reg.DeliveryAddress, reg.PaymentScreenshotURL, reg.PaymentScreenshotName,
		reg.WhereHeard, reg.PaymentTier, reg.Status, reg.CreatedAt, reg.UpdatedAt)
	if err != nil {
		// The unique constraint on user_id is the authoritative
		// duplicate-submission backstop.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			logger.DatabaseResult("INSERT", 0, nil, "user_id", reg.UserID, "duplicate", true)
			return domain.ErrAlreadyRegistered
		}
		logger.DatabaseResult("INSERT", 0, err, "user_id", reg.UserID)
		return err
	}
	logger.DatabaseResult("INSERT", 1, nil, "user_id", reg.UserID)
	return nil
}

func (r *registrationRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *registrationRepository) GetByUserID(ctx context.Context, userID string) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE user_id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, userID))
}

func (r *registrationRepository) ListAll(ctx context.Context) ([]domain.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations ORDER BY created_at DESC`
	logger.DatabaseCall("SELECT", "registrations")

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err)
		return nil, err
	}
	defer rows.Close()

	var regs []domain.Registration
	for rows.Next() {
		var reg domain.Registration
		if err := scanRegistration(rows.Scan, &reg); err != nil {
			logger.DatabaseResult("SELECT", int64(len(regs)), err)
			return nil, err
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	logger.DatabaseResult("SELECT", int64(len(regs)), nil)
	return regs, nil
}

func (r *registrationRepository) UpdateStatus(ctx context.Context, id string, status domain.RegistrationStatus) error {
	query := `UPDATE registrations SET registration_status=$1, updated_at=$2 WHERE id=$3`
	res, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrRegistrationNotFound
	}
	return nil
}

func (r *registrationRepository) scanOne(row *sql.Row) (*domain.Registration, error) {
	reg := &domain.Registration{}
	err := scanRegistration(row.Scan, reg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRegistrationNotFound
	}
	if err != nil {
		return nil, err
	}
	return reg, nil
}

func scanRegistration(scan func(dest ...any) error, reg *domain.Registration) error {
	return scan(
		&reg.ID, &reg.UserID, &reg.FullName, &reg.MobileNumber, &reg.EmailAddress, &reg.FullAddress, &reg.Gender,
		&reg.StravaProfileLink, &reg.TshirtSize, &reg.DeliveryAddress, &reg.PaymentScreenshotURL, &reg.PaymentScreenshotName,
		&reg.WhereHeard, &reg.PaymentTier, &reg.Status, &reg.CreatedAt, &reg.UpdatedAt,
	)
}
