package service

import (
	"context"
	"log/slog"
	"time"
)

// Sweeper is anything holding state that expires and needs collecting.
type Sweeper interface {
	Sweep(ctx context.Context) (int, error)
}

// SweeperFunc adapts a plain function to Sweeper.
type SweeperFunc func(ctx context.Context) (int, error)

func (f SweeperFunc) Sweep(ctx context.Context) (int, error) { return f(ctx) }

// HousekeepingService periodically drops idle rate-limit buckets and expired
// in-memory revocation records so neither grows without bound.
type HousekeepingService struct {
	Sweepers map[string]Sweeper
	Logger   *slog.Logger
	Interval time.Duration

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given interval.
// If interval is 0 or negative, defaults to 1 minute.
func NewHousekeepingService(sweepers map[string]Sweeper, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Minute
	}

	return &HousekeepingService{
		Sweepers: sweepers,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. Call Stop() to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop gracefully shuts down the background worker.
// Blocks until the worker has finished any in-progress cleanup.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.RunOnce(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// RunOnce sweeps everything once. Each sweeper is independent, a failure in
// one does not stop the others. It returns the total number of entries
// removed.
func (s *HousekeepingService) RunOnce(ctx context.Context) int {
	total := 0
	for name, sw := range s.Sweepers {
		n, err := sw.Sweep(ctx)
		if err != nil {
			s.Logger.Error("housekeeping sweep failed", "sweeper", name, "error", err)
			continue
		}
		total += n
		if n > 0 {
			s.Logger.Debug("housekeeping swept", "sweeper", name, "removed", n)
		}
	}
	return total
}
