package vendors

import (
	"context"
	"sync"
	"time"

	"github.com/streetcommerce/intake/internal/metrics"
)

// CachedDirectory wraps a Lister with a TTL roster cache so every
// intake doesn't hammer the sheets webapp. The cache is an explicit
// collaborator with injectable time, never package state.
type CachedDirectory struct {
	source Lister
	ttl    time.Duration
	now    func() time.Time

	mu        sync.RWMutex
	roster    []string
	fetchedAt time.Time
}

// CacheOption configures the CachedDirectory.
type CacheOption func(*CachedDirectory)

// WithNowFunc overrides the time source for testing.
func WithNowFunc(f func() time.Time) CacheOption {
	return func(c *CachedDirectory) {
		c.now = f
	}
}

// NewCachedDirectory wraps source with a roster cache of the given TTL.
func NewCachedDirectory(source Lister, ttl time.Duration, opts ...CacheOption) *CachedDirectory {
	c := &CachedDirectory{
		source: source,
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BestMatch matches against the cached roster, refreshing it when
// stale. A stale cache with a failing source returns the error rather
// than matching against outdated names.
func (c *CachedDirectory) BestMatch(ctx context.Context, query string) (string, error) {
	roster, err := c.currentRoster(ctx)
	if err != nil {
		metrics.VendorLookupsTotal.WithLabelValues("error").Inc()
		return "", err
	}

	match := BestMatch(roster, query)
	if match == "" {
		metrics.VendorLookupsTotal.WithLabelValues("miss").Inc()
	} else {
		metrics.VendorLookupsTotal.WithLabelValues("hit").Inc()
	}
	return match, nil
}

// List returns the cached roster, refreshing it when stale.
func (c *CachedDirectory) List(ctx context.Context) ([]string, error) {
	return c.currentRoster(ctx)
}

// Refresh re-fetches the roster regardless of TTL.
func (c *CachedDirectory) Refresh(ctx context.Context) error {
	roster, err := c.source.List(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.roster = roster
	c.fetchedAt = c.now()
	c.mu.Unlock()

	metrics.VendorCacheRefreshesTotal.Inc()
	return nil
}

func (c *CachedDirectory) currentRoster(ctx context.Context) ([]string, error) {
	c.mu.RLock()
	fresh := !c.fetchedAt.IsZero() && c.now().Sub(c.fetchedAt) < c.ttl
	roster := c.roster
	c.mu.RUnlock()

	if fresh {
		return roster, nil
	}

	if err := c.Refresh(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.roster, nil
}
