// Package scheduler triggers the batch matching pass on a fixed interval.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"crossing/config"
	"crossing/internal/delivery"
	domainerrors "crossing/internal/domain/errors"
	"crossing/internal/domain/lifecycle"
	"crossing/internal/errors"
	"crossing/internal/usecase"

	"go.uber.org/fx"
)

type scheduler struct {
	matchingUC usecase.MatchingUsecase
	interval   time.Duration
	logger     *slog.Logger

	mu      sync.Mutex
	stopped bool
	stopCh  chan struct{}
	passes  sync.WaitGroup
}

// SchedulerParams holds dependencies for the pass scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	Logger     *slog.Logger
	MatchingUC usecase.MatchingUsecase
}

// NewScheduler returns the delivery that runs a pass every passInterval.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	interval := config.DefaultCrossingConfig().PassInterval
	if params.Cfg != nil && params.Cfg.Crossing != nil && params.Cfg.Crossing.PassInterval > 0 {
		interval = params.Cfg.Crossing.PassInterval
	}

	s := newScheduler(params.MatchingUC, interval, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func newScheduler(matchingUC usecase.MatchingUsecase, interval time.Duration, logger *slog.Logger) *scheduler {
	return &scheduler{
		matchingUC: matchingUC,
		interval:   interval,
		logger:     logger,
		stopCh:     make(chan struct{}),
	}
}

// Serve ticks until ctx is cancelled or the scheduler is stopped. Each tick
// starts a pass in the background; a tick that finds a pass still running
// is skipped by the matching use case.
func (s *scheduler) Serve(ctx context.Context) error {
	s.logger.Info("Starting matching scheduler", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopCh:
			return nil
		case <-ticker.C:
			if !s.startPass(ctx) {
				return nil
			}
		}
	}
}

// startPass launches a pass unless stop has begun.
func (s *scheduler) startPass(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return false
	}

	s.passes.Go(func() {
		s.runPass(ctx)
	})

	return true
}

func (s *scheduler) runPass(ctx context.Context) {
	report, err := s.matchingUC.RunPass(ctx)
	switch {
	case errors.Is(err, domainerrors.ErrPassInProgress):
		s.logger.Warn("Skipped matching tick, previous pass still running")
	case err != nil:
		s.logger.Error("Matching pass failed", slog.Any("error", err))
	default:
		s.logger.Debug("Matching tick done", slog.Int64("epoch_id", report.EpochID))
	}
}

// stop ends the tick loop and waits for an in-flight pass.
func (s *scheduler) stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.stopped {
		s.stopped = true
		close(s.stopCh)
	}
	s.mu.Unlock()

	s.logger.Info("Stopping matching scheduler")

	done := make(chan struct{})
	go func() {
		s.passes.Wait()
		close(done)
	}()

	ctx, cancel := context.WithTimeout(ctx, lifecycle.PassDrainTimeout)
	defer cancel()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "matching pass did not drain")
	}
}
