package health

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonwraymond/inflect/cache"
)

// StatsSource reports cache statistics. *inflect.Inflector satisfies it.
type StatsSource interface {
	Stats() []cache.Stats
}

// StatsSourceFunc adapts a function to StatsSource.
type StatsSourceFunc func() []cache.Stats

func (f StatsSourceFunc) Stats() []cache.Stats { return f() }

// CacheCheckerConfig configures a CacheChecker. Zero fields take defaults.
type CacheCheckerConfig struct {
	// Name is reported by Checker.Name. Default: "caches".
	Name string

	// MinLookups is the number of lookups a cache needs before its hit
	// ratio is judged. Default: 100.
	MinLookups uint64

	// WarningHitRatio marks a cache degraded below it. Default: 0.5.
	WarningHitRatio float64

	// CriticalHitRatio marks a cache unhealthy below it. Default: 0.1.
	CriticalHitRatio float64
}

func (c *CacheCheckerConfig) applyDefaults() {
	if c.Name == "" {
		c.Name = "caches"
	}
	if c.MinLookups == 0 {
		c.MinLookups = 100
	}
	if c.WarningHitRatio == 0 {
		c.WarningHitRatio = 0.5
	}
	if c.CriticalHitRatio == 0 {
		c.CriticalHitRatio = 0.1
	}
}

// Validate reports whether the thresholds are usable.
func (c CacheCheckerConfig) Validate() error {
	if c.WarningHitRatio < 0 || c.WarningHitRatio > 1 {
		return fmt.Errorf("%w: warning %v", ErrInvalidThreshold, c.WarningHitRatio)
	}
	if c.CriticalHitRatio < 0 || c.CriticalHitRatio > 1 {
		return fmt.Errorf("%w: critical %v", ErrInvalidThreshold, c.CriticalHitRatio)
	}
	if c.CriticalHitRatio > c.WarningHitRatio {
		return fmt.Errorf("%w: critical %v above warning %v",
			ErrInvalidThreshold, c.CriticalHitRatio, c.WarningHitRatio)
	}
	return nil
}

// CacheChecker judges memoizing caches by their hit ratio. A cache that
// keeps missing is recomputing more than it serves, which usually means its
// capacity is too small for the working set.
type CacheChecker struct {
	src    StatsSource
	config CacheCheckerConfig
}

// NewCacheChecker returns a checker over src.
func NewCacheChecker(src StatsSource, config CacheCheckerConfig) (*CacheChecker, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &CacheChecker{src: src, config: config}, nil
}

func (c *CacheChecker) Name() string { return c.config.Name }

// Check grades every cache and returns the worst status. Caches with fewer
// than MinLookups lookups count as healthy.
func (c *CacheChecker) Check(ctx context.Context) Result {
	select {
	case <-ctx.Done():
		return Unhealthy("context cancelled", ctx.Err())
	default:
	}

	stats := c.src.Stats()
	details := make(map[string]any, len(stats))
	worst := StatusHealthy
	var degraded, unhealthy []string

	for _, s := range stats {
		status := c.grade(s)
		details[s.Name] = map[string]any{
			"status":    status.String(),
			"size":      s.Size,
			"capacity":  s.Capacity,
			"hits":      s.Hits,
			"misses":    s.Misses,
			"evictions": s.Evictions,
			"hit_ratio": s.HitRatio(),
		}

		switch status {
		case StatusDegraded:
			degraded = append(degraded, s.Name)
		case StatusUnhealthy:
			unhealthy = append(unhealthy, s.Name)
		}
		worst = max(worst, status)
	}

	var r Result
	switch worst {
	case StatusUnhealthy:
		r = Unhealthy("hit ratio critical: "+strings.Join(unhealthy, ", "), nil)
	case StatusDegraded:
		r = Degraded("hit ratio low: " + strings.Join(degraded, ", "))
	default:
		r = Healthy(fmt.Sprintf("%d caches ok", len(stats)))
	}
	return r.WithDetails(details)
}

func (c *CacheChecker) grade(s cache.Stats) Status {
	if s.Lookups() < c.config.MinLookups {
		return StatusHealthy
	}
	ratio := s.HitRatio()
	switch {
	case ratio < c.config.CriticalHitRatio:
		return StatusUnhealthy
	case ratio < c.config.WarningHitRatio:
		return StatusDegraded
	default:
		return StatusHealthy
	}
}
