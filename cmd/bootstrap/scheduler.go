package bootstrap

import (
	"context"

	"book-catalog/internal/jobs"
	"book-catalog/internal/pkg/config"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		jobs.NewExpirySweeper,
		func(cfg config.Config, sweeper *jobs.ExpirySweeper) (*jobs.Scheduler, error) {
			return jobs.NewScheduler(cfg.Sweep, sweeper)
		},
	),
	fx.Invoke(startScheduler),
)

func startScheduler(lc fx.Lifecycle, scheduler *jobs.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return scheduler.Start()
		},
		OnStop: func(_ context.Context) error {
			return scheduler.Stop()
		},
	})
}
