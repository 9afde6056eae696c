package jobs

import (
	"context"
	"time"

	"ministryhub-backend/internal/logger"
)

// PruneReadInbox removes read inbox events older than the configured
// retention window.
func (jr *JobRunner) PruneReadInbox() {
	jr.runWithRecovery("PruneReadInbox", func() {
		ctx := context.Background()

		retention := time.Duration(jr.config.Scheduler.InboxRetentionDays) * 24 * time.Hour
		cutoff := time.Now().Add(-retention)

		deleted, err := jr.inboxRepo.PruneRead(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to prune inbox events", "deleted_before_failure", deleted, "error", err)
			return
		}

		logger.Info("Pruned read inbox events", "count", deleted, "cutoff", cutoff.Format(time.RFC3339))
	})
}
