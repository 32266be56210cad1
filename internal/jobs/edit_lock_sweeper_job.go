package jobs

import (
	"context"
	"log/slog"

	"orderdesk/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultSweepSchedule runs the sweeper every 30 seconds.
const DefaultSweepSchedule = "*/30 * * * * *"

// EditLockSweeperJob periodically removes edit locks older than the TTL.
type EditLockSweeperJob struct {
	handler  commands.PurgeExpiredEditLocksCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewEditLockSweeperJob creates the job. schedule is a cron spec with a
// seconds field; empty means DefaultSweepSchedule.
func NewEditLockSweeperJob(
	handler commands.PurgeExpiredEditLocksCommandHandler,
	schedule string,
	logger *slog.Logger,
) *EditLockSweeperJob {
	if schedule == "" {
		schedule = DefaultSweepSchedule
	}
	return &EditLockSweeperJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "edit_lock_sweeper_job"),
	}
}

func (j *EditLockSweeperJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Edit lock sweeper job started", "schedule", j.schedule)
	return nil
}

// RunOnce purges expired locks and returns how many were removed.
func (j *EditLockSweeperJob) RunOnce(ctx context.Context) int64 {
	purged, err := j.handler.Handle(ctx, commands.NewPurgeExpiredEditLocksCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Edit lock sweeper job failed", "error", err)
		return 0
	}
	if purged > 0 {
		j.logger.InfoContext(ctx, "Expired edit locks purged", "count", purged)
	}
	return purged
}

// Stop waits for a running sweep to finish.
func (j *EditLockSweeperJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Edit lock sweeper job stopped")
}
