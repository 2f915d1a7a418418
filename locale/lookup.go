package locale

import (
	"sort"
	"sync"
)

// Lookup resolves localization keys to template strings.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: absent keys report ok=false; Lookup never fails.
type Lookup interface {
	Lookup(key string) (string, bool)
}

// LookupFunc adapts a function to Lookup.
type LookupFunc func(key string) (string, bool)

// Lookup calls f(key).
func (f LookupFunc) Lookup(key string) (string, bool) { return f(key) }

// Table is an in-memory Lookup. The zero value is an empty table.
type Table struct {
	mu      sync.RWMutex
	strings map[string]string
}

// NewTable creates a table holding a copy of entries.
func NewTable(entries map[string]string) *Table {
	t := &Table{strings: make(map[string]string, len(entries))}
	for k, v := range entries {
		t.strings[k] = v
	}
	return t
}

// Lookup returns the string stored under key.
func (t *Table) Lookup(key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	s, ok := t.strings[key]
	return s, ok
}

// Set stores s under key, replacing any previous value.
func (t *Table) Set(key, s string) {
	t.mu.Lock()
	if t.strings == nil {
		t.strings = make(map[string]string)
	}
	t.strings[key] = s
	t.mu.Unlock()
}

// SetAll merges entries into the table.
func (t *Table) SetAll(entries map[string]string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.strings == nil {
		t.strings = make(map[string]string, len(entries))
	}
	for k, v := range entries {
		t.strings[k] = v
	}
}

// Len returns the number of keys.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.strings)
}

// Keys returns the keys in sorted order.
func (t *Table) Keys() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	keys := make([]string, 0, len(t.strings))
	for k := range t.strings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var _ Lookup = (*Table)(nil)
