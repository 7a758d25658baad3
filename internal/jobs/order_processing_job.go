package jobs

import (
	"context"
	"log/slog"

	"orderservice/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderProcessingJob manages the scheduled sweep that moves pending orders
// into processing. The sweep is the only path from Pending to Processing:
// orders are never promoted individually on request threads.
type OrderProcessingJob struct {
	handler  commands.ProcessPendingOrdersCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderProcessingJob creates the sweep job. The schedule is a six-field
// cron expression with a seconds column, e.g. "0 */5 * * * *" for every
// five minutes.
func NewOrderProcessingJob(
	handler commands.ProcessPendingOrdersCommandHandler,
	schedule string,
	logger *slog.Logger,
) *OrderProcessingJob {
	return &OrderProcessingJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_processing_job"),
	}
}

// Start begins the periodic sweep on the configured schedule.
// A failing tick is logged and the schedule keeps running; the next tick
// picks up whatever the failed one left pending.
func (j *OrderProcessingJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewProcessPendingOrdersCommand()

		count, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order processing sweep failed", "error", err)
			return
		}

		if count > 0 {
			j.logger.InfoContext(ctx, "Order processing sweep completed", "ordersProcessed", count)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order processing job started", "schedule", j.schedule)
	return nil
}

// Stop stops the order processing job.
func (j *OrderProcessingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order processing job stopped")
}
