package observe

import (
	"context"
	"time"

	"github.com/jonwraymond/inflect/cache"
)

// Middleware traces and logs cache computations. Its Wrap method has the
// shape of inflect.Middleware, so it can be passed as
// inflect.WithMiddleware(mw.Wrap).
//
// Contract:
//   - Concurrency: functions returned by Wrap are safe for concurrent use.
//   - Errors: errors from the wrapped function are recorded and returned unchanged.
//   - Ownership: keys and values pass through unmodified.
type Middleware struct {
	tracer Tracer
	logger Logger
}

// NewMiddleware creates a Middleware. Nil components fall back to no-ops.
func NewMiddleware(tracer Tracer, logger Logger) *Middleware {
	if tracer == nil {
		tracer = newNoopTracer()
	}
	if logger == nil {
		logger = &noopLogger{}
	}
	return &Middleware{tracer: tracer, logger: logger}
}

// Wrap decorates the compute function of the named cache.
func (m *Middleware) Wrap(name string, fn cache.ComputeFunc[string]) cache.ComputeFunc[string] {
	logger := m.logger.WithCache(name)

	return func(key string) (string, error) {
		ctx, span := m.tracer.StartSpan(context.Background(), name, key)
		start := time.Now()

		out, err := fn(key)

		duration := time.Since(start)
		m.tracer.EndSpan(span, err)

		fields := []Field{
			{Key: "duration_ms", Value: float64(duration) / float64(time.Millisecond)},
			{Key: "key_len", Value: len(key)},
		}
		if err != nil {
			fields = append(fields, Field{Key: "error", Value: err})
			logger.Error(ctx, "compute failed", fields...)
		} else {
			logger.Debug(ctx, "computed", fields...)
		}

		return out, err
	}
}

// MiddlewareFromObserver creates a Middleware on obs's tracer and logger.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}
	return NewMiddleware(NewTracer(obs.Tracer()), obs.Logger()), nil
}
