package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jonwraymond/inflect/cache"
)

// Metric instrument names.
const (
	MetricHits      = "inflect.cache.hits"
	MetricMisses    = "inflect.cache.misses"
	MetricEvictions = "inflect.cache.evictions"
	MetricErrors    = "inflect.cache.errors"
	MetricComputeMS = "inflect.cache.compute_ms"
)

// Metrics exports cache activity as OpenTelemetry instruments. It satisfies
// cache.Recorder and can be handed to cache.WithRecorder or
// inflect.WithRecorder.
type Metrics struct {
	hits      metric.Int64Counter
	misses    metric.Int64Counter
	evictions metric.Int64Counter
	errors    metric.Int64Counter
	compute   metric.Float64Histogram
}

// NewMetrics registers the cache instruments on meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	hits, err := meter.Int64Counter(MetricHits,
		metric.WithDescription("Lookups served from a resident entry"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}

	misses, err := meter.Int64Counter(MetricMisses,
		metric.WithDescription("Lookups that ran the compute function"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}

	evictions, err := meter.Int64Counter(MetricEvictions,
		metric.WithDescription("Entries dropped to make room"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return nil, err
	}

	errs, err := meter.Int64Counter(MetricErrors,
		metric.WithDescription("Computations that returned an error"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	compute, err := meter.Float64Histogram(MetricComputeMS,
		metric.WithDescription("Compute duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		hits:      hits,
		misses:    misses,
		evictions: evictions,
		errors:    errs,
		compute:   compute,
	}, nil
}

// MetricsFromObserver registers the cache instruments on obs's meter.
func MetricsFromObserver(obs Observer) (*Metrics, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}
	return NewMetrics(obs.Meter())
}

func cacheAttr(name string) metric.MeasurementOption {
	return metric.WithAttributes(attribute.String("cache.name", name))
}

// RecordHit implements cache.Recorder.
func (m *Metrics) RecordHit(name string) {
	m.hits.Add(context.Background(), 1, cacheAttr(name))
}

// RecordMiss implements cache.Recorder.
func (m *Metrics) RecordMiss(name string, duration time.Duration, err error) {
	ctx := context.Background()
	opt := cacheAttr(name)

	m.misses.Add(ctx, 1, opt)
	if err != nil {
		m.errors.Add(ctx, 1, opt)
	}
	m.compute.Record(ctx, float64(duration)/float64(time.Millisecond), opt)
}

// RecordEviction implements cache.Recorder.
func (m *Metrics) RecordEviction(name string) {
	m.evictions.Add(context.Background(), 1, cacheAttr(name))
}

var _ cache.Recorder = (*Metrics)(nil)
