package jobs

import (
	"context"
	"log/slog"
	"time"

	"backoffice/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleDraftSweeperJob cancels draft orders that have been idle too long.
// Runs at the top of every hour.
type StaleDraftSweeperJob struct {
	handler   commands.SweepStaleDraftsCommandHandler
	olderThan time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStaleDraftSweeperJob creates a job that sweeps drafts older than the
// given age.
func NewStaleDraftSweeperJob(
	handler commands.SweepStaleDraftsCommandHandler,
	olderThan time.Duration,
	logger *slog.Logger,
) *StaleDraftSweeperJob {
	return &StaleDraftSweeperJob{
		handler:   handler,
		olderThan: olderThan,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "stale_draft_sweeper_job"),
	}
}

// Start begins the sweeper job to run hourly.
func (j *StaleDraftSweeperJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewSweepStaleDraftsCommand(j.olderThan)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Stale draft sweep misconfigured", "error", cmdErr)
			return
		}

		swept, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale draft sweep failed", "error", handleErr)
			return
		}

		if swept > 0 {
			j.logger.InfoContext(ctx, "Swept stale drafts", "count", swept)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale draft sweeper job started (running hourly)")
	return nil
}

// Stop stops the sweeper job.
func (j *StaleDraftSweeperJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale draft sweeper job stopped")
}
