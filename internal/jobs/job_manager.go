package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleDraftSweeperJob *StaleDraftSweeperJob
	lowStockAlertJob     *LowStockAlertJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command and query handlers as dependencies to wire up job execution.
func NewJobManager(
	sweepHandler commands.SweepStaleDraftsCommandHandler,
	lowStockHandler queries.GetLowStockProductsQueryHandler,
	staleDraftAge time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleDraftSweeperJob: NewStaleDraftSweeperJob(sweepHandler, staleDraftAge, logger),
		lowStockAlertJob:     NewLowStockAlertJob(lowStockHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleDraftSweeperJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale draft sweeper job: %w", err)
	}

	if err := jm.lowStockAlertJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.staleDraftSweeperJob.Stop()
		return fmt.Errorf("failed to start low stock alert job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleDraftSweeperJob.Stop()
	jm.lowStockAlertJob.Stop()
}
