package jobs

import (
	"context"
	"log/slog"

	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/access"
	"backoffice/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// LowStockAlertJob logs products that fell to or below their minimum
// stock, every five minutes. The log line is the alert; a notification
// channel can be attached to the same query later.
type LowStockAlertJob struct {
	handler queries.GetLowStockProductsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLowStockAlertJob creates a job that reports products needing restock.
func NewLowStockAlertJob(handler queries.GetLowStockProductsQueryHandler, logger *slog.Logger) *LowStockAlertJob {
	return &LowStockAlertJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "low_stock_alert_job"),
	}
}

// Start begins the alert job to run every five minutes.
func (j *LowStockAlertJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()

		// The job reads on behalf of the system, not a user.
		system, actorErr := access.NewActor(kernel.NewUUID(), access.Admin)
		if actorErr != nil {
			j.logger.ErrorContext(ctx, "Low stock alert misconfigured", "error", actorErr)
			return
		}

		query, queryErr := queries.NewGetLowStockProductsQuery(system)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Low stock alert misconfigured", "error", queryErr)
			return
		}

		products, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Low stock alert failed", "error", handleErr)
			return
		}

		for _, p := range products {
			j.logger.WarnContext(ctx, "Product needs restock",
				"sku", p.SKU,
				"stock", p.Stock,
				"min_stock", p.MinStock,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock alert job started (running every five minutes)")
	return nil
}

// Stop stops the alert job.
func (j *LowStockAlertJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock alert job stopped")
}
