package cache

import "errors"

// ErrInvalidCapacity is returned by New when Options.Capacity is not positive.
// A zero-capacity store could never admit an entry, and Put would have
// nothing to evict.
var ErrInvalidCapacity = errors.New("cache: capacity must be > 0")

// Store is a fixed-capacity key/value store with strict LRU eviction.
// The map and the list are always in 1:1 correspondence; Len() never
// exceeds Cap() after any operation.
//
// A Store is not safe for concurrent use; see the package documentation.
type Store[K comparable, V any] struct {
	m    map[K]*node[K, V]
	head *node[K, V] // MRU
	tail *node[K, V] // LRU
	len  int
	cap  int

	opt Options[K, V]
}

// New constructs a store with the provided Options.
// It returns ErrInvalidCapacity when Options.Capacity <= 0.
func New[K comparable, V any](opt Options[K, V]) (*Store[K, V], error) {
	if opt.Capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	return &Store[K, V]{
		m:   make(map[K]*node[K, V], opt.Capacity),
		cap: opt.Capacity,
		opt: opt,
	}, nil
}

// Get returns the value for k and a presence flag.
// On hit, the entry is promoted to MRU. A miss mutates nothing.
func (s *Store[K, V]) Get(k K) (V, bool) {
	n, ok := s.m[k]
	if !ok {
		s.opt.Metrics.Miss()
		var zero V
		return zero, false
	}
	s.moveToFront(n)
	s.opt.Metrics.Hit()
	return n.val, true
}

// Put inserts or overwrites k→v and promotes the entry to MRU.
// Overwriting an existing key never changes the size and never evicts.
// Inserting a new key into a full store evicts the LRU entry first.
func (s *Store[K, V]) Put(k K, v V) {
	if n, ok := s.m[k]; ok {
		n.val = v
		s.moveToFront(n)
		s.opt.Metrics.Size(s.len)
		return
	}

	if s.len == s.cap {
		s.evictNode(s.tail)
	}

	n := &node[K, V]{key: k, val: v}
	s.m[k] = n
	s.insertFront(n)
	s.opt.Metrics.Size(s.len)
}

// Remove deletes an entry by key. Returns true if the entry existed.
// The recency of the remaining entries is unaffected.
func (s *Store[K, V]) Remove(k K) bool {
	n, ok := s.m[k]
	if !ok {
		return false
	}
	s.removeNode(n)
	delete(s.m, k)
	s.opt.Metrics.Size(s.len)
	return true
}

// Contains reports whether k is present without promoting the entry.
// Unlike Get, it is a pure read and carries no recency side effect.
func (s *Store[K, V]) Contains(k K) bool {
	_, ok := s.m[k]
	return ok
}

// Keys returns a snapshot of all resident keys in MRU→LRU order.
// The slice is freshly allocated; mutating the store afterwards does not
// affect it.
func (s *Store[K, V]) Keys() []K {
	ks := make([]K, 0, s.len)
	for n := s.head; n != nil; n = n.next {
		ks = append(ks, n.key)
	}
	return ks
}

// Len returns the number of resident entries.
func (s *Store[K, V]) Len() int { return s.len }

// Cap returns the capacity set at construction.
func (s *Store[K, V]) Cap() int { return s.cap }

// -------------------- internals --------------------

// insertFront inserts n at MRU in O(1).
func (s *Store[K, V]) insertFront(n *node[K, V]) {
	n.prev = nil
	n.next = s.head
	if s.head != nil {
		s.head.prev = n
	}
	s.head = n
	if s.tail == nil {
		s.tail = n
	}
	s.len++
}

// moveToFront promotes n to MRU in O(1).
func (s *Store[K, V]) moveToFront(n *node[K, V]) {
	if n == s.head {
		return
	}
	// detach
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	if s.tail == n {
		s.tail = n.prev
	}
	// insert at head
	n.prev = nil
	n.next = s.head
	if s.head != nil {
		s.head.prev = n
	}
	s.head = n
	if s.tail == nil {
		s.tail = n
	}
}

// removeNode removes n from the list and updates counters in O(1).
func (s *Store[K, V]) removeNode(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	if s.head == n {
		s.head = n.next
	}
	if s.tail == n {
		s.tail = n.prev
	}
	n.prev, n.next = nil, nil
	s.len--
}

// evictNode removes the node, updates metrics, and calls OnEvict.
func (s *Store[K, V]) evictNode(n *node[K, V]) {
	s.removeNode(n)
	delete(s.m, n.key)
	s.opt.Metrics.Evict()
	if cb := s.opt.OnEvict; cb != nil {
		cb(n.key, n.val)
	}
}
