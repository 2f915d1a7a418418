package inflect

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonwraymond/inflect/cache"
)

// computeCounter is a Middleware that counts computations per transform.
type computeCounter struct {
	mu    sync.Mutex
	calls map[string]int
}

func newComputeCounter() *computeCounter {
	return &computeCounter{calls: make(map[string]int)}
}

func (c *computeCounter) middleware(name string, fn cache.ComputeFunc[string]) cache.ComputeFunc[string] {
	return func(s string) (string, error) {
		c.mu.Lock()
		c.calls[name]++
		c.mu.Unlock()
		return fn(s)
	}
}

func (c *computeCounter) count(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[name]
}

func statsFor(t *testing.T, in *Inflector, kind Kind) cache.Stats {
	t.Helper()
	for _, s := range in.Stats() {
		if s.Name == kind.String() {
			return s
		}
	}
	t.Fatalf("no stats for %s", kind)
	return cache.Stats{}
}

func TestInflector_SecondCallServedFromCache(t *testing.T) {
	counter := newComputeCounter()
	in := New(WithMiddleware(counter.middleware))

	transforms := map[Kind]func(string) string{
		KindDecamelize: in.Decamelize,
		KindDasherize:  in.Dasherize,
		KindCamelize:   in.Camelize,
		KindClassify:   in.Classify,
		KindUnderscore: in.Underscore,
		KindCapitalize: in.Capitalize,
	}

	for kind, fn := range transforms {
		first := fn("privateDocs/owner-invoice")
		missesAfterFirst := statsFor(t, in, kind).Misses

		second := fn("privateDocs/owner-invoice")
		assert.Equal(t, first, second, "%s output should be stable", kind)
		assert.Equal(t, missesAfterFirst, statsFor(t, in, kind).Misses, "%s second call must not miss", kind)
		assert.Equal(t, 1, counter.count(kind.String()), "%s should compute once", kind)
	}
}

func TestInflector_CachesAreIndependent(t *testing.T) {
	counter := newComputeCounter()
	in := New(WithMiddleware(counter.middleware))

	// Dasherize decamelizes internally without touching the decamelize cache.
	in.Dasherize("innerHTML")

	assert.Equal(t, 0, statsFor(t, in, KindDecamelize).Size)
	assert.Equal(t, 0, counter.count(KindDecamelize.String()))
	assert.Equal(t, 1, statsFor(t, in, KindDasherize).Size)
}

func TestInflector_Eviction(t *testing.T) {
	counter := newComputeCounter()
	in := New(WithCapacity(2), WithMiddleware(counter.middleware))

	in.Camelize("a-b")
	in.Camelize("c-d")
	in.Camelize("e-f") // evicts "a-b"

	stats := statsFor(t, in, KindCamelize)
	assert.Equal(t, 2, stats.Size)
	assert.Equal(t, 2, stats.Capacity)
	assert.Equal(t, uint64(1), stats.Evictions)

	in.Camelize("c-d") // still resident
	assert.Equal(t, 3, counter.count("camelize"))

	assert.Equal(t, "aB", in.Camelize("a-b")) // recomputed
	assert.Equal(t, 4, counter.count("camelize"))
}

func TestInflector_Apply(t *testing.T) {
	in := New()

	tests := []struct {
		kind  Kind
		input string
		want  string
	}{
		{KindDecamelize, "innerHTML", "inner_html"},
		{KindDasherize, "my favorite items", "my-favorite-items"},
		{KindCamelize, "css-class-name", "cssClassName"},
		{KindClassify, "private-docs/owner-invoice", "PrivateDocs/OwnerInvoice"},
		{KindUnderscore, "privateDocs/ownerInvoice", "private_docs/owner_invoice"},
		{KindCapitalize, "my favorite items", "My favorite items"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got, err := in.Apply(tt.kind, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInflector_ApplyUnknownKind(t *testing.T) {
	in := New()

	for _, kind := range []Kind{-1, kindCount, 99} {
		_, err := in.Apply(kind, "x")
		assert.ErrorIs(t, err, ErrUnknownKind)
	}
}

func TestInflector_FailingMiddlewareReturnsInput(t *testing.T) {
	failing := func(name string, fn cache.ComputeFunc[string]) cache.ComputeFunc[string] {
		return func(string) (string, error) {
			return "", errors.New("unavailable")
		}
	}
	in := New(WithMiddleware(failing))

	assert.Equal(t, "innerHTML", in.Decamelize("innerHTML"))
	assert.Equal(t, 0, statsFor(t, in, KindDecamelize).Size)

	_, err := in.Apply(KindDecamelize, "innerHTML")
	assert.Error(t, err)
}

func TestInflector_MiddlewareOrder(t *testing.T) {
	var order []string
	tag := func(label string) Middleware {
		return func(name string, fn cache.ComputeFunc[string]) cache.ComputeFunc[string] {
			return func(s string) (string, error) {
				order = append(order, label)
				return fn(s)
			}
		}
	}

	in := New(WithMiddleware(tag("outer"), tag("inner")))
	in.Capitalize("x")

	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestInflector_Purge(t *testing.T) {
	counter := newComputeCounter()
	in := New(WithMiddleware(counter.middleware))

	in.Classify("a-b")
	in.Purge()
	for _, s := range in.Stats() {
		assert.Equal(t, 0, s.Size, "%s should be empty after Purge", s.Name)
	}

	in.Classify("a-b")
	assert.Equal(t, 2, counter.count("classify"))
}

func TestInflector_StatsOrder(t *testing.T) {
	in := New(WithCapacity(7))

	stats := in.Stats()
	require.Len(t, stats, len(Kinds()))
	for i, kind := range Kinds() {
		assert.Equal(t, kind.String(), stats[i].Name)
		assert.Equal(t, 7, stats[i].Capacity)
	}
}

func TestInflector_Concurrent(t *testing.T) {
	counter := newComputeCounter()
	in := New(WithMiddleware(counter.middleware))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, "PrivateDocs/OwnerInvoice", in.Classify("private-docs/owner-invoice"))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, counter.count("classify"))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "decamelize", KindDecamelize.String())
	assert.Equal(t, "capitalize", KindCapitalize.String())
	assert.Equal(t, "kind(42)", Kind(42).String())
}
