package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultOverdueSchedule runs the sweep at the top of every hour.
const DefaultOverdueSchedule = "@hourly"

// OverdueMarker is implemented by commands.MarkOverdueRentalsCommandHandler.
type OverdueMarker interface {
	Handle(ctx context.Context, cmd commands.MarkOverdueRentalsCommand) (int, error)
}

// OverdueRentalsJob periodically moves Active rentals past their end date to
// Overdue, which in turn sends the overdue notice.
type OverdueRentalsJob struct {
	handler  OverdueMarker
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOverdueRentalsJob accepts standard five-field cron expressions, an
// optional leading seconds field and descriptors such as @hourly.
func NewOverdueRentalsJob(handler OverdueMarker, schedule string, logger *slog.Logger) *OverdueRentalsJob {
	if schedule == "" {
		schedule = DefaultOverdueSchedule
	}
	parser := cron.NewParser(
		cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	)
	return &OverdueRentalsJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(parser)),
		logger:   logger.With("component", "overdue_rentals_job"),
	}
}

func (j *OverdueRentalsJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue rentals job started", "schedule", j.schedule)
	return nil
}

// Run performs one sweep.
func (j *OverdueRentalsJob) Run(ctx context.Context) {
	marked, err := j.handler.Handle(ctx, commands.NewMarkOverdueRentalsCommand())
	if marked > 0 {
		j.logger.InfoContext(ctx, "Rentals marked overdue", "count", marked)
	}
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue rentals job failed", "error", err)
	}
}

// Stop waits for a running sweep to finish.
func (j *OverdueRentalsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Overdue rentals job stopped")
}
