package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultCapacity is the entry limit used when no positive capacity is given.
const DefaultCapacity = 1000

// Sentinel errors for cache operations.
var (
	ErrNilCache   = errors.New("cache: cache is nil")
	ErrNilCompute = errors.New("cache: compute function is nil")
)

// ComputeFunc produces the value for a key on a cache miss.
type ComputeFunc[V any] func(key string) (V, error)

// Recorder observes cache activity.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: recording is best-effort and must not panic.
type Recorder interface {
	// RecordHit is called when a lookup is served from a resident entry.
	RecordHit(name string)

	// RecordMiss is called after every computation, successful or not.
	RecordMiss(name string, duration time.Duration, err error)

	// RecordEviction is called when an entry is dropped to make room.
	RecordEviction(name string)
}

// Memo is a bounded memoizing cache keyed by string.
//
// Once Cap entries are resident, inserting a new key evicts the oldest
// inserted entry. Lookups never refresh an entry's position: eviction is
// strictly first-in first-out.
//
// Contract:
// - Concurrency: safe for concurrent use; at most one computation per key
// is in flight at any time.
// - Errors: a failed computation is returned to the caller and never stored.
// A nil *Memo returns ErrNilCache from Get and zero values elsewhere.
type Memo[V any] struct {
	name     string
	compute  ComputeFunc[V]
	capacity int
	recorder Recorder

	group singleflight.Group

	mu      sync.RWMutex
	entries map[string]V
	order   []string // resident keys in insertion order, oldest at head
	head    int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// New creates a Memo that fills itself with compute.
func New[V any](name string, compute ComputeFunc[V], opts ...Option) *Memo[V] {
	o := options{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	if o.capacity <= 0 {
		o.capacity = DefaultCapacity
	}

	return &Memo[V]{
		name:     name,
		compute:  compute,
		capacity: o.capacity,
		recorder: o.recorder,
		entries:  make(map[string]V),
	}
}

// NewTotal creates a Memo around a function that cannot fail.
func NewTotal[V any](name string, fn func(string) V, opts ...Option) *Memo[V] {
	if fn == nil {
		return New[V](name, nil, opts...)
	}
	return New(name, func(key string) (V, error) {
		return fn(key), nil
	}, opts...)
}

// Name returns the name the cache reports to its Recorder.
func (m *Memo[V]) Name() string {
	if m == nil {
		return ""
	}
	return m.name
}

// Cap returns the maximum number of resident entries.
func (m *Memo[V]) Cap() int {
	if m == nil {
		return 0
	}
	return m.capacity
}

// Len returns the number of resident entries.
func (m *Memo[V]) Len() int {
	if m == nil {
		return 0
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Get returns the value for key, computing and storing it on a miss.
func (m *Memo[V]) Get(key string) (V, error) {
	var zero V
	if m == nil {
		return zero, ErrNilCache
	}
	if m.compute == nil {
		return zero, ErrNilCompute
	}

	if v, ok := m.lookup(key); ok {
		return v, nil
	}

	computed := false
	res, err, _ := m.group.Do(key, func() (any, error) {
		// Another flight may have stored the key between lookup and Do.
		m.mu.RLock()
		v, ok := m.entries[key]
		m.mu.RUnlock()
		if ok {
			return v, nil
		}

		computed = true
		start := time.Now()
		v, err := m.compute(key)
		elapsed := time.Since(start)

		m.misses.Add(1)
		var evicted bool
		if err == nil {
			m.mu.Lock()
			evicted = m.insertLocked(key, v)
			m.mu.Unlock()
		}

		if m.recorder != nil {
			m.recorder.RecordMiss(m.name, elapsed, err)
			if evicted {
				m.recorder.RecordEviction(m.name)
			}
		}
		if err != nil {
			return nil, err
		}
		return v, nil
	})
	if err != nil {
		return zero, err
	}

	if !computed {
		m.countHit()
	}
	v, _ := res.(V)
	return v, nil
}

// Peek returns a resident value without computing or touching the counters.
func (m *Memo[V]) Peek(key string) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok
}

// Purge drops every entry and resets the counters.
func (m *Memo[V]) Purge() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[string]V)
	m.order = m.order[:0]
	m.head = 0
	m.hits.Store(0)
	m.misses.Store(0)
	m.evictions.Store(0)
}

func (m *Memo[V]) lookup(key string) (V, bool) {
	m.mu.RLock()
	v, ok := m.entries[key]
	m.mu.RUnlock()

	if ok {
		m.countHit()
	}
	return v, ok
}

func (m *Memo[V]) countHit() {
	m.hits.Add(1)
	if m.recorder != nil {
		m.recorder.RecordHit(m.name)
	}
}

// insertLocked stores key and reports whether the oldest entry was evicted.
// Caller must hold m.mu.
func (m *Memo[V]) insertLocked(key string, v V) bool {
	if _, ok := m.entries[key]; ok {
		m.entries[key] = v
		return false
	}

	// Entries are only removed by eviction or Purge, so the ring fills
	// from index 0 and head stays at 0 until it is full.
	if len(m.order) < m.capacity {
		m.order = append(m.order, key)
		m.entries[key] = v
		return false
	}

	victim := m.order[m.head]
	delete(m.entries, victim)
	m.order[m.head] = key
	m.head = (m.head + 1) % m.capacity
	m.entries[key] = v
	m.evictions.Add(1)
	return true
}
