package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"ecomove/internal/core/application/usecases/commands"
)

// overdueSweepSchedule fires at the top of every minute.
const overdueSweepSchedule = "0 * * * * *"

// OverdueLoanJob periodically flags active rentals whose scheduled end has
// passed. A minute of resolution is enough: billing is by started hour, so a
// late flag never changes the charge.
type OverdueLoanJob struct {
	handler commands.MarkOverdueLoansCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueLoanJob creates the overdue sweep job.
func NewOverdueLoanJob(handler commands.MarkOverdueLoansCommandHandler, logger *slog.Logger) *OverdueLoanJob {
	return &OverdueLoanJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_loan_job"),
	}
}

// Start schedules the sweep to run every minute.
func (j *OverdueLoanJob) Start() error {
	_, err := j.cron.AddFunc(overdueSweepSchedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewMarkOverdueLoansCommand(time.Now().UTC())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Overdue sweep could not be built", "error", cmdErr)
			return
		}

		flipped, sweepErr := j.handler.Handle(ctx, cmd)
		if sweepErr != nil {
			j.logger.ErrorContext(ctx, "Overdue sweep failed", "error", sweepErr)
			return
		}

		if flipped > 0 {
			j.logger.InfoContext(ctx, "Overdue sweep flagged rentals", "count", flipped)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue loan job started (running every minute)")
	return nil
}

// Stop stops the overdue sweep.
func (j *OverdueLoanJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue loan job stopped")
}
