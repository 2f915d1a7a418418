package health

import (
	"context"
	"sync"
	"time"
)

// AggregatorConfig configures an Aggregator.
type AggregatorConfig struct {
	// Timeout bounds a CheckAll call. Default: 10 seconds.
	Timeout time.Duration

	// Parallel runs checks concurrently.
	Parallel bool
}

// Report is the result of one named check.
type Report struct {
	Name string
	Result
}

// Aggregator runs registered checkers and combines their results.
type Aggregator struct {
	config AggregatorConfig

	mu       sync.RWMutex
	checkers map[string]Checker
	order    []string
}

// NewAggregator creates an Aggregator. Without a config checks run in
// parallel with a 10 second timeout.
func NewAggregator(config ...AggregatorConfig) *Aggregator {
	cfg := AggregatorConfig{Timeout: 10 * time.Second, Parallel: true}
	if len(config) > 0 {
		cfg = config[0]
		if cfg.Timeout <= 0 {
			cfg.Timeout = 10 * time.Second
		}
	}
	return &Aggregator{config: cfg, checkers: make(map[string]Checker)}
}

// Register adds checker under its Name. Registering a name again replaces
// the checker and keeps its position.
func (a *Aggregator) Register(checker Checker) {
	name := checker.Name()

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.checkers[name]; !ok {
		a.order = append(a.order, name)
	}
	a.checkers[name] = checker
}

// Unregister removes the checker registered under name.
func (a *Aggregator) Unregister(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.checkers[name]; !ok {
		return
	}
	delete(a.checkers, name)
	for i, n := range a.order {
		if n == name {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

// Names returns the registered names in registration order.
func (a *Aggregator) Names() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]string(nil), a.order...)
}

// Check runs the checker registered under name.
func (a *Aggregator) Check(ctx context.Context, name string) (Result, error) {
	a.mu.RLock()
	checker, ok := a.checkers[name]
	a.mu.RUnlock()

	if !ok {
		return Result{}, ErrCheckerNotFound
	}
	return runCheck(ctx, checker), nil
}

// CheckAll runs every checker and returns reports in registration order.
func (a *Aggregator) CheckAll(ctx context.Context) []Report {
	a.mu.RLock()
	reports := make([]Report, len(a.order))
	checkers := make([]Checker, len(a.order))
	for i, name := range a.order {
		reports[i].Name = name
		checkers[i] = a.checkers[name]
	}
	a.mu.RUnlock()

	if len(checkers) == 0 {
		return reports
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.Timeout)
	defer cancel()

	if !a.config.Parallel {
		for i, c := range checkers {
			reports[i].Result = runCheck(ctx, c)
		}
		return reports
	}

	var wg sync.WaitGroup
	for i, c := range checkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reports[i].Result = runCheck(ctx, c)
		}()
	}
	wg.Wait()
	return reports
}

// OverallStatus returns the worst status among reports, or StatusHealthy
// when there are none.
func OverallStatus(reports []Report) Status {
	worst := StatusHealthy
	for _, r := range reports {
		worst = max(worst, r.Status)
	}
	return worst
}

func runCheck(ctx context.Context, checker Checker) Result {
	start := time.Now()
	done := make(chan Result, 1)

	go func() {
		r := checker.Check(ctx)
		if r.Timestamp.IsZero() {
			r.Timestamp = start
		}
		done <- r
	}()

	select {
	case r := <-done:
		return r.WithDuration(time.Since(start))
	case <-ctx.Done():
		return Result{
			Status:    StatusUnhealthy,
			Message:   "check timed out",
			Error:     ErrCheckTimeout,
			Duration:  time.Since(start),
			Timestamp: start,
		}
	}
}

// Checker exposes the aggregator as a single Checker named "aggregate".
func (a *Aggregator) Checker() Checker {
	return NewCheckerFunc("aggregate", func(ctx context.Context) Result {
		reports := a.CheckAll(ctx)

		details := make(map[string]any, len(reports))
		for _, r := range reports {
			details[r.Name] = r.Status.String()
		}

		var r Result
		switch OverallStatus(reports) {
		case StatusUnhealthy:
			r = Unhealthy("some checks failed", nil)
		case StatusDegraded:
			r = Degraded("some checks degraded")
		default:
			r = Healthy("all checks passed")
		}
		return r.WithDetails(details)
	})
}
