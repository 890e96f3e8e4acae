package jobs

import (
	"fmt"
	"log/slog"

	"ecomove/internal/core/application/usecases/commands"
)

// JobManager coordinates the scheduled jobs of the application behind a
// single start/stop interface.
type JobManager struct {
	overdueLoanJob *OverdueLoanJob
}

// NewJobManager creates a job manager wired to the given command handlers.
func NewJobManager(
	markOverdueHandler commands.MarkOverdueLoansCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueLoanJob: NewOverdueLoanJob(markOverdueHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueLoanJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue loan job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueLoanJob.Stop()
}
