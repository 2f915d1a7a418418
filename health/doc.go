// Package health reports whether the transform caches are earning their
// keep.
//
// CacheChecker reads cache.Stats from a StatsSource such as an
// *inflect.Inflector and grades each cache by hit ratio once it has seen
// enough lookups. Aggregator runs any number of Checkers and reduces them to
// one Status:
//
//	checker, err := health.NewCacheChecker(inflector, health.CacheCheckerConfig{
//	    MinLookups:       1000,
//	    WarningHitRatio:  0.6,
//	    CriticalHitRatio: 0.2,
//	})
//
//	agg := health.NewAggregator()
//	agg.Register(checker)
//	reports := agg.CheckAll(ctx)
//	if health.OverallStatus(reports) != health.StatusHealthy {
//	    ...
//	}
//
// RegisterHandlers serves the same aggregator over HTTP at /healthz, /readyz,
// /health and /health/{name}.
package health
