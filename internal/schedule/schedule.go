// Package schedule drives the pipeline in daemon mode. It wraps gocron with
// the one policy the job needs: singleton runs, so a slow render is never
// overlapped by the next trigger.
package schedule

import (
	"context"
	"fmt"

	"github.com/go-co-op/gocron/v2"

	"github.com/vk/readmegen/internal/ctxlog"
)

// Run executes task on the given 5-field cron expression until the context
// is cancelled, then shuts the scheduler down.
func Run(ctx context.Context, cronExpr string, task func()) error {
	logger := ctxlog.FromContext(ctx)

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	job, err := scheduler.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(task),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return fmt.Errorf("invalid cron expression %q: %w", cronExpr, err)
	}

	scheduler.Start()
	logger.Info("Scheduler started.", "cron", cronExpr, "job_id", job.ID())

	<-ctx.Done()
	logger.Info("Scheduler shutting down.")
	return scheduler.Shutdown()
}
