package vendors

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler refreshes the vendor roster cache in the background so the
// first intake after a quiet stretch doesn't pay the fetch latency.
type Scheduler struct {
	cron  *cron.Cron
	cache *CachedDirectory
	log   *slog.Logger
}

// NewScheduler creates a scheduler that refreshes cache every interval.
func NewScheduler(
	cache *CachedDirectory,
	interval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:  c,
		cache: cache,
		log:   log,
	}

	if _, err := c.AddFunc("@every "+interval.String(), s.runRefresh); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins the background refresh loop.
func (s *Scheduler) Start() {
	s.log.Info("vendor refresh scheduler started")
	s.cron.Start()
}

// Stop stops the scheduler, waiting for a running refresh to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("vendor refresh scheduler stopping")
	return s.cron.Stop()
}

func (s *Scheduler) runRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.cache.Refresh(ctx); err != nil {
		s.log.Error("vendor roster refresh failed", "error", err)
		return
	}
	s.log.Debug("vendor roster refreshed")
}
