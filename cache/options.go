package cache

// Metrics exposes store-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
type Metrics interface {
	Hit()
	Miss()
	Evict()
	Size(entries int)
}

// Options configures the store. Zero values are safe except Capacity,
// which must be positive; sane defaults are applied in New():
//   - nil Metrics => NoopMetrics
type Options[K comparable, V any] struct {
	// Capacity is the entry count limit. New returns ErrInvalidCapacity
	// when it is not positive.
	Capacity int

	// OnEvict is called for every capacity-triggered eviction.
	// Explicit Remove calls do not report here.
	OnEvict func(k K, v V)

	// Metrics receives hit/miss/evict/size signals.
	Metrics Metrics
}
