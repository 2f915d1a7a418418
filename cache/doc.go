// Package cache provides a bounded memoizing cache for pure string-keyed
// computations.
//
// A Memo owns one compute function. The first Get for a key runs it and
// stores the result; later calls return the stored value. Capacity is fixed
// at construction and eviction is first-in first-out: reads never change
// which entry goes next.
//
//	upper := cache.NewTotal("upper", strings.ToUpper, cache.WithCapacity(100))
//	v, _ := upper.Get("abc") // computes "ABC"
//	v, _ = upper.Get("abc")  // served from the cache
//
// Failed computations are returned to the caller and are never stored.
package cache
