package service

import (
	"context"
	"fmt"
	"strconv"

	"cycleclub-backend/internal/domain"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host, port, username, password, from string) EmailService {
	p, _ := strconv.Atoi(port)
	return &emailService{
		host:     host,
		port:     p,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) send(m *gomail.Message) error {
	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}
	return nil
}

func (s *emailService) SendSubmissionConfirmation(ctx context.Context, email, name string, tier domain.Tier) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Registration Received - Virtual Cycling Challenge")

	body := fmt.Sprintf("Hello %s,\n\nThank you for registering for the Virtual Cycling Challenge with the %s package (₹%d).\n\nWe are reviewing your payment confirmation and will notify you once your registration is approved.\n\nRide on,\nSomeshwar Cycling Club", name, tier.ID, tier.PriceRupees)
	m.SetBody("text/plain", body)

	return s.send(m)
}

func (s *emailService) SendStatusNotification(ctx context.Context, email, name string, status domain.RegistrationStatus) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Registration Status Update - Virtual Cycling Challenge")

	var body string
	switch status {
	case domain.StatusApproved:
		body = fmt.Sprintf("Hello %s,\n\nCongratulations! Your registration has been approved. Get ready for the challenge!\n\nRide on,\nSomeshwar Cycling Club", name)
	case domain.StatusRejected:
		body = fmt.Sprintf("Hello %s,\n\nYour registration needs attention. Please contact us for more information.\n\nRegards,\nSomeshwar Cycling Club", name)
	default:
		body = fmt.Sprintf("Hello %s,\n\nYour registration status is now: %s.\n\nRegards,\nSomeshwar Cycling Club", name, status)
	}
	m.SetBody("text/plain", body)

	return s.send(m)
}

func (s *emailService) SendAdminDigest(ctx context.Context, email string, stats domain.Stats) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Daily Registration Digest - Virtual Cycling Challenge")

	body := fmt.Sprintf(
		"Registration summary:\n\nTotal: %d\nPending review: %d\nApproved: %d\nRejected: %d\n\nRevenue (approved): ₹%d\n  basic: ₹%d\n  plus: ₹%d\n  premium: ₹%d\n",
		stats.Total,
		stats.ByStatus.Pending,
		stats.ByStatus.Approved,
		stats.ByStatus.Rejected,
		stats.TotalRevenue,
		stats.RevenueByTier.Basic,
		stats.RevenueByTier.Plus,
		stats.RevenueByTier.Premium,
	)
	m.SetBody("text/plain", body)

	return s.send(m)
}
