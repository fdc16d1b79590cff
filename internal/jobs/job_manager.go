package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager owns the background jobs started next to the HTTP server.
type JobManager struct {
	overdueRentalsJob *OverdueRentalsJob
}

func NewJobManager(markOverdue OverdueMarker, overdueSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		overdueRentalsJob: NewOverdueRentalsJob(markOverdue, overdueSchedule, logger),
	}
}

func (jm *JobManager) StartAll() error {
	if err := jm.overdueRentalsJob.Start(); err != nil {
		return fmt.Errorf("start overdue rentals job: %w", err)
	}
	return nil
}

// StopAll waits for running sweeps to finish.
func (jm *JobManager) StopAll() {
	jm.overdueRentalsJob.Stop()
}
