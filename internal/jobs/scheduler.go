package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"book-catalog/internal/pkg/config"
	"book-catalog/internal/pkg/errs"

	"github.com/go-co-op/gocron/v2"
)

var ErrInvalidSweepTime = errs.New("sweep time must be HH:MM")

// Scheduler runs the expiry sweep once a day at the configured wall
// clock time.
type Scheduler struct {
	inner   gocron.Scheduler
	sweeper *ExpirySweeper
	cfg     config.SweepConfig
}

func NewScheduler(cfg config.SweepConfig, sweeper *ExpirySweeper) (*Scheduler, error) {
	inner, err := gocron.NewScheduler()
	if err != nil {
		return nil, errs.Wrap(err, "failed to create scheduler")
	}

	return &Scheduler{inner: inner, sweeper: sweeper, cfg: cfg}, nil
}

func (s *Scheduler) Start() error {
	if s.cfg.Disabled {
		slog.Info("expiry sweep disabled")
		return nil
	}

	hour, minute, err := parseAtTime(s.cfg.AtTime)
	if err != nil {
		return err
	}

	_, err = s.inner.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(hour, minute, 0))),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()
			s.sweeper.RunOnce(ctx)
		}),
		gocron.WithName("reservation-expiry-sweep"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return errs.Wrap(err, "failed to register sweep job")
	}

	s.inner.Start()
	slog.Info("expiry sweep scheduled", "at", s.cfg.AtTime)
	return nil
}

func (s *Scheduler) Stop() error {
	return s.inner.Shutdown()
}

func parseAtTime(v string) (uint, uint, error) {
	var hour, minute uint
	if _, err := fmt.Sscanf(v, "%d:%d", &hour, &minute); err != nil {
		return 0, 0, errs.Mark(err, ErrInvalidSweepTime)
	}
	if hour > 23 || minute > 59 {
		return 0, 0, ErrInvalidSweepTime
	}
	return hour, minute, nil
}
