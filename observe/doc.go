// Package observe instruments the transform caches.
//
// Metrics implements cache.Recorder and counts hits, misses, evictions and
// failed computations per cache. Middleware wraps compute functions with a
// span named inflect.compute.<cache> and a log entry. Both are built from an
// Observer, which owns the OpenTelemetry providers and the Logger selected by
// Config:
//
//	obs, err := observe.NewObserver(ctx, cfg)
//	metrics, err := observe.MetricsFromObserver(obs)
//	mw, err := observe.MiddlewareFromObserver(obs)
//	in := inflect.New(inflect.WithRecorder(metrics), inflect.WithMiddleware(mw.Wrap))
//
// The package does no I/O beyond exporter setup and log output.
package observe
