package rangesum

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/rangecache/rangecache/cache"
)

// Number constrains the element and accumulator type parameters.
type Number interface {
	constraints.Integer | constraints.Float
}

// ErrOutOfRange is returned when a query or invalidation index falls outside
// [0, len(array)). The cache is left untouched on this path.
var ErrOutOfRange = errors.New("rangesum: index out of range")

// Range identifies an inclusive index span over the backing slice.
// Keys resident in the cache always satisfy Left <= Right.
type Range struct {
	Left  int
	Right int
}

// Contains reports whether i falls inside the inclusive span.
func (r Range) Contains(i int) bool { return r.Left <= i && i <= r.Right }

// Options configures a Cache.
type Options struct {
	// Capacity is the entry limit of the underlying LRU store.
	// New returns cache.ErrInvalidCapacity when it is not positive.
	Capacity int

	// Metrics is forwarded to the underlying store (hit/miss/evict/size).
	Metrics cache.Metrics

	// OnInvalidate is called after every Invalidate with the written index
	// and the number of entries dropped (possibly zero).
	OnInvalidate func(index, removed int)
}

// Cache memoizes sums of array[left..right] (inclusive) with LRU eviction.
// E is the slice element type, S the accumulator; pick S wide enough that
// summing len(array) elements of E cannot overflow.
type Cache[E, S Number] struct {
	store *cache.Store[Range, S]
	opt   Options
}

// New constructs a range-sum cache with the provided Options.
func New[E, S Number](opt Options) (*Cache[E, S], error) {
	store, err := cache.New[Range, S](cache.Options[Range, S]{
		Capacity: opt.Capacity,
		Metrics:  opt.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Cache[E, S]{store: store, opt: opt}, nil
}

// QuerySum returns the sum of array[left..right], both ends inclusive.
// Reversed bounds are normalized before lookup, so (5,2) and (2,5) hit the
// same entry. On a miss the sum is computed from the live slice and cached.
func (c *Cache[E, S]) QuerySum(left, right int, array []E) (S, error) {
	key, err := normalize(left, right, len(array))
	if err != nil {
		var zero S
		return zero, err
	}

	if v, ok := c.store.Get(key); ok {
		return v, nil
	}

	var sum S
	for _, e := range array[key.Left : key.Right+1] {
		sum += S(e)
	}
	c.store.Put(key, sum)
	return sum, nil
}

// Invalidate drops every cached entry whose range covers index. The caller
// invokes it right after writing array[index], before the next QuerySum.
// The scan walks the resident keys only, so its cost is bounded by the
// store capacity regardless of slice length.
func (c *Cache[E, S]) Invalidate(index int, array []E) error {
	if index < 0 || index >= len(array) {
		return fmt.Errorf("invalidate index %d in slice of length %d: %w", index, len(array), ErrOutOfRange)
	}

	removed := 0
	for _, key := range c.store.Keys() {
		if key.Contains(index) {
			if c.store.Remove(key) {
				removed++
			}
		}
	}
	if cb := c.opt.OnInvalidate; cb != nil {
		cb(index, removed)
	}
	return nil
}

// Len returns the number of resident entries.
func (c *Cache[E, S]) Len() int { return c.store.Len() }

// normalize orders the bounds and validates them against the slice length.
func normalize(left, right, length int) (Range, error) {
	if left > right {
		left, right = right, left
	}
	if left < 0 || right >= length {
		return Range{}, fmt.Errorf("range [%d, %d] in slice of length %d: %w", left, right, length, ErrOutOfRange)
	}
	return Range{Left: left, Right: right}, nil
}
