// Package cache provides a fast, generic, fixed-capacity in-memory store
// with strict Least-Recently-Used eviction.
//
// Design
//
//   - Storage: a map[K]*node for lookups and an intrusive MRU↔LRU doubly
//     linked list for recency ordering. All operations are O(1) expected,
//     except Keys which is O(len).
//
//   - Eviction: strictly LRU. Every Get and Put establishes a total recency
//     order via the node's list position, so the tail is always the unique
//     least-recently-used entry. When a Put of a new key finds the store
//     full, the tail is evicted before insertion.
//
//   - Metrics: Options.Metrics receives Hit/Miss/Evict/Size signals.
//     NoopMetrics is the default; plug the metrics/prom adapter to export
//     Prometheus counters.
//
//   - Callbacks: Options.OnEvict(k, v) fires for every capacity eviction
//     (not for explicit Remove calls).
//
// # Concurrency
//
// A Store is owned by a single goroutine; none of its methods are safe for
// concurrent use. Callers that need shared access must serialize every
// operation behind one exclusive lock, since eviction and recency updates
// perform linked-list pointer surgery.
//
// Basic usage
//
//	s, err := cache.New[string, int](cache.Options[string, int]{Capacity: 1024})
//	if err != nil {
//	    // capacity was not positive
//	}
//	s.Put("a", 1)
//	if v, ok := s.Get("a"); ok {
//	    _ = v // use value
//	}
//	s.Remove("a")
package cache
