// Package rangesum caches range-sum queries over a mutable numeric slice
// behind a fixed-capacity LRU store.
//
// The cache is keyed by normalized inclusive (left, right) index pairs, so
// QuerySum(5, 2, a) and QuerySum(2, 5, a) share one entry. On a miss the sum
// is computed directly from the live slice and admitted to the store; on a
// hit the precomputed value is returned unchanged.
//
// The backing slice stays owned by the caller and is passed to every
// operation; the cache only reads it. After writing a[i] the caller must
// call Invalidate(i, a) before the next QuerySum, otherwise a stale sum may
// be served. Invalidate drops every resident entry whose range covers i by
// scanning the resident keys; the scan is bounded by the store's capacity,
// not by the slice length. That linear scan is the documented contract of
// this package, deliberately kept over an interval index.
//
// Element and sum types are independent type parameters so that sums can
// accumulate in a wider type than the elements, e.g.
//
//	c, err := rangesum.New[int32, int64](rangesum.Options{Capacity: 1000})
//	if err != nil { ... }
//	total, err := c.QuerySum(2, 5, a) // int64 sum over []int32
//
// Like cache.Store, a Cache is owned by a single goroutine.
package rangesum
