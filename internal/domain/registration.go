package domain

import (
	"errors"
	"time"
)

type RegistrationStatus string

const (
	StatusPending  RegistrationStatus = "pending"
	StatusApproved RegistrationStatus = "approved"
	StatusRejected RegistrationStatus = "rejected"
)

// IsValid reports whether s is one of the known registration statuses.
func (s RegistrationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether s admits no further transitions.
func (s RegistrationStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

var (
	ErrAlreadyRegistered    = errors.New("registration already exists for this user")
	ErrRegistrationNotFound = errors.New("registration not found")
)

// Registration is the persisted record of a user's challenge submission.
// A user has at most one registration; the status field is the only part
// mutated after creation, and only by an administrator.
type Registration struct {
	ID                    string             `json:"id"`
	UserID                string             `json:"user_id"`
	FullName              string             `json:"full_name"`
	MobileNumber          string             `json:"mobile_number"`
	EmailAddress          string             `json:"email_address"`
	FullAddress           string             `json:"full_address"`
	Gender                string             `json:"gender"`
	StravaProfileLink     string             `json:"strava_profile_link"`
	TshirtSize            string             `json:"tshirt_size,omitempty"`
	DeliveryAddress       string             `json:"delivery_address,omitempty"`
	PaymentScreenshotURL  string             `json:"payment_screenshot_url"`
	PaymentScreenshotName string             `json:"payment_screenshot_name"`
	WhereHeard            string             `json:"where_heard"`
	PaymentTier           TierID             `json:"payment_tier"`
	Status                RegistrationStatus `json:"registration_status"`
	CreatedAt             time.Time          `json:"created_at"`
	UpdatedAt             time.Time          `json:"updated_at"`
}
