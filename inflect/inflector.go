package inflect

import (
	"errors"
	"fmt"

	"github.com/jonwraymond/inflect/cache"
)

// ErrUnknownKind indicates a Kind outside the defined transforms.
var ErrUnknownKind = errors.New("inflect: unknown transform kind")

// Kind identifies one of the cached transforms.
type Kind int

const (
	KindDecamelize Kind = iota
	KindDasherize
	KindCamelize
	KindClassify
	KindUnderscore
	KindCapitalize
	kindCount
)

var kindNames = [kindCount]string{
	KindDecamelize: "decamelize",
	KindDasherize:  "dasherize",
	KindCamelize:   "camelize",
	KindClassify:   "classify",
	KindUnderscore: "underscore",
	KindCapitalize: "capitalize",
}

var kindFuncs = [kindCount]func(string) string{
	KindDecamelize: decamelize,
	KindDasherize:  dasherize,
	KindCamelize:   camelize,
	KindClassify:   classify,
	KindUnderscore: underscore,
	KindCapitalize: capitalize,
}

// String returns the transform name, which is also its cache name.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds returns every transform kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Middleware decorates the compute function of one transform cache.
type Middleware func(name string, fn cache.ComputeFunc[string]) cache.ComputeFunc[string]

// Option configures an Inflector.
type Option func(*config)

type config struct {
	capacity   int
	recorder   cache.Recorder
	middleware []Middleware
}

// WithCapacity sets the entry limit of every transform cache.
func WithCapacity(n int) Option {
	return func(c *config) { c.capacity = n }
}

// WithRecorder reports cache activity of every transform to r.
func WithRecorder(r cache.Recorder) Option {
	return func(c *config) { c.recorder = r }
}

// WithMiddleware wraps each transform's compute function. Middleware is
// applied in order, so the first one given is the outermost.
func WithMiddleware(mw ...Middleware) Option {
	return func(c *config) { c.middleware = append(c.middleware, mw...) }
}

// Inflector owns one memoizing cache per transform kind.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - Errors: transforms are total; every input yields an output.
// - Ownership: caches are independent; no transform reads another's cache.
type Inflector struct {
	caches [kindCount]*cache.Memo[string]
}

// New builds an Inflector with empty caches.
func New(opts ...Option) *Inflector {
	cfg := config{capacity: cache.DefaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}

	cacheOpts := []cache.Option{cache.WithCapacity(cfg.capacity)}
	if cfg.recorder != nil {
		cacheOpts = append(cacheOpts, cache.WithRecorder(cfg.recorder))
	}

	in := &Inflector{}
	for _, k := range Kinds() {
		fn := kindFuncs[k]
		compute := cache.ComputeFunc[string](func(s string) (string, error) {
			return fn(s), nil
		})
		for i := len(cfg.middleware) - 1; i >= 0; i-- {
			compute = cfg.middleware[i](k.String(), compute)
		}
		in.caches[k] = cache.New(k.String(), compute, cacheOpts...)
	}
	return in
}

// Apply runs the transform identified by kind.
func (in *Inflector) Apply(kind Kind, s string) (string, error) {
	if kind < 0 || kind >= kindCount {
		return "", fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	return in.caches[kind].Get(s)
}

// apply serves the built-in kinds. Middleware may fail a computation; in
// that case the input is returned unchanged.
func (in *Inflector) apply(kind Kind, s string) string {
	out, err := in.caches[kind].Get(s)
	if err != nil {
		return s
	}
	return out
}

// Decamelize converts camelCase to lower_case_and_underscored.
//
//	"innerHTML" -> "inner_html"
func (in *Inflector) Decamelize(s string) string { return in.apply(KindDecamelize, s) }

// Dasherize replaces underscores and spaces of the decamelized form with dashes.
//
//	"my favorite items" -> "my-favorite-items"
func (in *Inflector) Dasherize(s string) string { return in.apply(KindDasherize, s) }

// Camelize returns the lowerCamelCase form of each path segment.
//
//	"css-class-name" -> "cssClassName"
func (in *Inflector) Camelize(s string) string { return in.apply(KindCamelize, s) }

// Classify returns the UpperCamelCase form of each path segment.
//
//	"private-docs/owner-invoice" -> "PrivateDocs/OwnerInvoice"
func (in *Inflector) Classify(s string) string { return in.apply(KindClassify, s) }

// Underscore converts camelCase, dashes and spaces to underscores.
//
//	"privateDocs/ownerInvoice" -> "private_docs/owner_invoice"
func (in *Inflector) Underscore(s string) string { return in.apply(KindUnderscore, s) }

// Capitalize upper-cases the first letter of each path segment.
//
//	"my favorite items" -> "My favorite items"
func (in *Inflector) Capitalize(s string) string { return in.apply(KindCapitalize, s) }

// Stats returns a snapshot of every transform cache in Kinds order.
func (in *Inflector) Stats() []cache.Stats {
	stats := make([]cache.Stats, 0, kindCount)
	for _, c := range in.caches {
		stats = append(stats, c.Stats())
	}
	return stats
}

// Purge empties every transform cache.
func (in *Inflector) Purge() {
	for _, c := range in.caches {
		c.Purge()
	}
}
