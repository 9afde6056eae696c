package jobs

import (
	"ministryhub-backend/internal/config"
	"ministryhub-backend/internal/logger"
	"ministryhub-backend/internal/repository"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	inboxRepo repository.InboxRepository
	config    *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(inboxRepo repository.InboxRepository, cfg *config.Config) *JobRunner {
	return &JobRunner{
		inboxRepo: inboxRepo,
		config:    cfg,
	}
}

// Config exposes the loaded configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
