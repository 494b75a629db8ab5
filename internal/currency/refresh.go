package currency

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RefreshScheduler periodically re-fetches the currency list from the provider
// and overwrites the shared cache. The registry itself never expires entries;
// this job is the only in-process writer besides cold-start fetches, and its
// overwrite is idempotent.
type RefreshScheduler struct {
	registry *Registry
	interval time.Duration
	// -----
	sched gocron.Scheduler
}

func NewRefreshScheduler(registry *Registry, interval time.Duration) *RefreshScheduler {
	return &RefreshScheduler{registry: registry, interval: interval}
}

func (s *RefreshScheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.sched = scheduler

	job := func(jobCtx context.Context) {
		execID := uuid.NewString()
		currencies, refreshErr := s.registry.Refresh(jobCtx)
		if refreshErr != nil {
			logrus.Errorf("Currency list refresh job %s failed: %v", execID, refreshErr)
			return
		}
		logrus.Infof("Currency list refresh job %s stored %d currencies", execID, len(currencies))
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Refresh scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *RefreshScheduler) Shutdown() error {
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}
