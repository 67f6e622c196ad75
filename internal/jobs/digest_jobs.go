package jobs

import (
	"context"

	"cycleclub-backend/internal/logger"
)

// SendDailyDigest emails every administrator a snapshot of registration
// totals, revenue, and tier distribution.
func (jr *JobRunner) SendDailyDigest() {
	jr.runWithRecovery("SendDailyDigest", func() {
		ctx := context.Background()

		stats, err := jr.services.Registration.Stats(ctx)
		if err != nil {
			logger.Error("Failed to compute registration stats", "error", err)
			return
		}

		sent := 0
		for _, email := range jr.config.Admin.Emails {
			if err := jr.services.Email.SendAdminDigest(ctx, email, stats); err != nil {
				logger.Error("Failed to send admin digest", "email", email, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Admin digest sent",
			"recipients", sent,
			"total_registrations", stats.Total,
			"pending", stats.ByStatus.Pending)
	})
}
