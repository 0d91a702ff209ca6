package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/haruki-nikaidou/open-crypto-checkout/internal/clock"
)

const (
	restartBackoffInitial = time.Second
	restartBackoffMax     = 30 * time.Second
)

// Component is one long-lived pipeline task. Run blocks until the context is
// canceled or the component fails.
type Component interface {
	Name() string
	Run(ctx context.Context) error
}

// Supervisor keeps components running: a component that returns an error is
// restarted with capped exponential backoff, doubling after each consecutive
// failure and resetting once a run survives its backoff window.
type Supervisor struct {
	logger     *zap.Logger
	components []Component
}

// NewSupervisor builds a Supervisor over the given components.
func NewSupervisor(logger *zap.Logger, components ...Component) *Supervisor {
	return &Supervisor{logger: logger.Named("supervisor"), components: components}
}

// Run blocks until the context is canceled and every component has exited.
func (s *Supervisor) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, component := range s.components {
		wg.Add(1)
		go func(c Component) {
			defer wg.Done()
			s.supervise(ctx, c)
		}(component)
	}
	wg.Wait()
}

func (s *Supervisor) supervise(ctx context.Context, c Component) {
	backoff := restartBackoffInitial
	logger := s.logger.With(zap.String("component", c.Name()))

	for {
		started := time.Now()
		err := c.Run(ctx)

		if ctx.Err() != nil || errors.Is(err, context.Canceled) {
			logger.Info("component stopped")
			return
		}
		if err == nil {
			// Clean exit without cancellation means the event source closed.
			logger.Info("component finished")
			return
		}

		if time.Since(started) > backoff {
			backoff = restartBackoffInitial
		}
		logger.Error("component crashed, restarting",
			zap.Error(err),
			zap.Duration("backoff", backoff))

		if sleepErr := clock.SleepWithContext(ctx, backoff); sleepErr != nil {
			return
		}
		backoff *= 2
		if backoff > restartBackoffMax {
			backoff = restartBackoffMax
		}
	}
}
