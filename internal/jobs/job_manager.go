package jobs

import (
	"fmt"
	"log/slog"

	"orderdesk/internal/core/application/usecases/commands"
)

// JobManager starts and stops the scheduled jobs together.
type JobManager struct {
	editLockSweeperJob *EditLockSweeperJob
}

func NewJobManager(
	purgeLocksHandler commands.PurgeExpiredEditLocksCommandHandler,
	sweepSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		editLockSweeperJob: NewEditLockSweeperJob(purgeLocksHandler, sweepSchedule, logger),
	}
}

// StartAll returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.editLockSweeperJob.Start(); err != nil {
		return fmt.Errorf("failed to start edit lock sweeper job: %w", err)
	}

	return nil
}

func (jm *JobManager) StopAll() {
	jm.editLockSweeperJob.Stop()
}
