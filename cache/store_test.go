package cache

import (
	"math/rand"
	"testing"
)

func mustNew[K comparable, V any](t *testing.T, opt Options[K, V]) *Store[K, V] {
	t.Helper()
	s, err := New[K, V](opt)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

// Capacity <= 0 must fail construction with ErrInvalidCapacity.
func TestStore_InvalidCapacity(t *testing.T) {
	t.Parallel()

	for _, c := range []int{0, -1, -100} {
		if _, err := New[string, int](Options[string, int]{Capacity: c}); err != ErrInvalidCapacity {
			t.Fatalf("Capacity=%d: want ErrInvalidCapacity, got %v", c, err)
		}
	}
}

// Basic Put/Get/Remove semantics.
func TestStore_BasicPutGetRemove(t *testing.T) {
	t.Parallel()

	s := mustNew(t, Options[string, int]{Capacity: 8})

	s.Put("a", 1)
	if v, ok := s.Get("a"); !ok || v != 1 {
		t.Fatalf("Get a want 1, got %v ok=%v", v, ok)
	}

	s.Put("a", 11) // overwrite, no size change
	if v, ok := s.Get("a"); !ok || v != 11 {
		t.Fatalf("Get a want 11, got %v ok=%v", v, ok)
	}
	if s.Len() != 1 {
		t.Fatalf("Len want 1, got %d", s.Len())
	}

	if !s.Remove("a") {
		t.Fatal("Remove a must be true")
	}
	if s.Remove("a") {
		t.Fatal("second Remove a must be false")
	}
	if _, ok := s.Get("a"); ok {
		t.Fatal("a must be absent after Remove")
	}
}

// Get/Remove on an absent key is a normal miss, not an error.
func TestStore_MissPath(t *testing.T) {
	t.Parallel()

	s := mustNew(t, Options[string, int]{Capacity: 2})
	if _, ok := s.Get("nope"); ok {
		t.Fatal("empty store must miss")
	}
	if s.Remove("nope") {
		t.Fatal("Remove of absent key must be false")
	}
	if s.Len() != 0 {
		t.Fatalf("miss paths must not mutate, Len=%d", s.Len())
	}
}

// Len() <= Cap() must hold after every Put, for any insertion sequence.
func TestStore_CapacityBound(t *testing.T) {
	t.Parallel()

	const capacity = 16
	s := mustNew(t, Options[int, int]{Capacity: capacity})

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10_000; i++ {
		s.Put(r.Intn(100), i)
		if s.Len() > capacity {
			t.Fatalf("after put #%d: Len=%d exceeds capacity %d", i, s.Len(), capacity)
		}
	}
}

// Inserting N+1 distinct keys with no intervening Get evicts exactly the
// first-inserted key.
func TestStore_EvictsOldest(t *testing.T) {
	t.Parallel()

	const capacity = 4
	var evicted []int
	s := mustNew(t, Options[int, string]{
		Capacity: capacity,
		OnEvict:  func(k int, _ string) { evicted = append(evicted, k) },
	})

	for i := 0; i < capacity+1; i++ {
		s.Put(i, "v")
	}

	if len(evicted) != 1 || evicted[0] != 0 {
		t.Fatalf("want eviction of key 0 only, got %v", evicted)
	}
	if s.Contains(0) {
		t.Fatal("key 0 must be evicted")
	}
	for i := 1; i <= capacity; i++ {
		if !s.Contains(i) {
			t.Fatalf("key %d must survive", i)
		}
	}
}

// A Get promotes the entry, so it is no longer the eviction candidate.
func TestStore_GetProtectsFromEviction(t *testing.T) {
	t.Parallel()

	s := mustNew(t, Options[string, int]{Capacity: 2})

	s.Put("a", 1) // LRU = a
	s.Put("b", 2) // MRU = b

	if _, ok := s.Get("a"); !ok { // promote a -> MRU
		t.Fatal("expect hit for a")
	}
	s.Put("c", 3) // overflow -> evict LRU (b)

	if s.Contains("b") {
		t.Fatal("b must be evicted")
	}
	if !s.Contains("a") {
		t.Fatal("a must survive (promoted)")
	}
	if v, ok := s.Get("c"); !ok || v != 3 {
		t.Fatal("c must be present")
	}
}

// Overwriting an existing key promotes it and never evicts.
func TestStore_PutOverwriteNoEvict(t *testing.T) {
	t.Parallel()

	evictions := 0
	s := mustNew(t, Options[string, int]{
		Capacity: 2,
		OnEvict:  func(string, int) { evictions++ },
	})

	s.Put("a", 1)
	s.Put("b", 2)
	s.Put("a", 10) // full store, existing key: overwrite + promote

	if evictions != 0 {
		t.Fatalf("overwrite must not evict, got %d evictions", evictions)
	}
	s.Put("c", 3) // now "b" is LRU (a was promoted by the overwrite)
	if s.Contains("b") {
		t.Fatal("b must be the eviction victim after a's overwrite")
	}
	if v, ok := s.Get("a"); !ok || v != 10 {
		t.Fatalf("a must hold overwritten value, got %v ok=%v", v, ok)
	}
}

// Contains is a pure peek: it must not change the eviction order.
func TestStore_ContainsDoesNotPromote(t *testing.T) {
	t.Parallel()

	s := mustNew(t, Options[string, int]{Capacity: 2})

	s.Put("a", 1)
	s.Put("b", 2)

	if !s.Contains("a") { // peek, no promotion
		t.Fatal("a must be present")
	}
	s.Put("c", 3) // "a" is still LRU -> evicted

	if s.Contains("a") {
		t.Fatal("Contains must not protect a from eviction")
	}
	if !s.Contains("b") {
		t.Fatal("b must survive")
	}
}

// Keys returns a snapshot in MRU→LRU order reflecting the live set.
func TestStore_KeysSnapshot(t *testing.T) {
	t.Parallel()

	s := mustNew(t, Options[int, int]{Capacity: 8})
	for i := 0; i < 4; i++ {
		s.Put(i, i)
	}
	s.Get(0) // promote 0 to MRU

	got := s.Keys()
	want := []int{0, 3, 2, 1}
	if len(got) != len(want) {
		t.Fatalf("Keys len want %d, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Keys[%d] want %d, got %d (full: %v)", i, want[i], got[i], got)
		}
	}

	// Snapshot must not observe later mutations.
	s.Remove(3)
	if len(got) != 4 {
		t.Fatal("snapshot changed after Remove")
	}
}

// Removing from the ends and the middle keeps the list and map consistent.
func TestStore_RemoveListPositions(t *testing.T) {
	t.Parallel()

	for _, victim := range []int{0, 1, 2} { // tail, middle, head
		s := mustNew(t, Options[int, int]{Capacity: 4})
		for i := 0; i < 3; i++ {
			s.Put(i, i) // list: 2(head) 1 0(tail)
		}
		if !s.Remove(victim) {
			t.Fatalf("Remove %d must succeed", victim)
		}
		if s.Len() != 2 {
			t.Fatalf("Len want 2, got %d", s.Len())
		}
		for i := 0; i < 3; i++ {
			if i == victim {
				continue
			}
			if v, ok := s.Get(i); !ok || v != i {
				t.Fatalf("victim=%d: survivor %d missing", victim, i)
			}
		}
	}
}

// Randomized cross-check against a model: an LRU simulated with a plain
// slice must agree with the store on every lookup.
func TestStore_ModelCheck(t *testing.T) {
	t.Parallel()

	const capacity = 8
	s := mustNew(t, Options[int, int]{Capacity: capacity})

	// model: recency slice, index 0 = MRU
	type pair struct{ k, v int }
	var model []pair
	find := func(k int) int {
		for i, p := range model {
			if p.k == k {
				return i
			}
		}
		return -1
	}

	r := rand.New(rand.NewSource(42))
	for step := 0; step < 20_000; step++ {
		k := r.Intn(24)
		switch r.Intn(3) {
		case 0: // Put
			v := r.Int()
			s.Put(k, v)
			if i := find(k); i >= 0 {
				model = append(model[:i], model[i+1:]...)
			} else if len(model) == capacity {
				model = model[:capacity-1]
			}
			model = append([]pair{{k, v}}, model...)
		case 1: // Get
			v, ok := s.Get(k)
			i := find(k)
			if ok != (i >= 0) {
				t.Fatalf("step %d: Get(%d) presence mismatch: store=%v model=%v", step, k, ok, i >= 0)
			}
			if ok {
				if v != model[i].v {
					t.Fatalf("step %d: Get(%d) value mismatch: store=%d model=%d", step, k, v, model[i].v)
				}
				p := model[i]
				model = append(model[:i], model[i+1:]...)
				model = append([]pair{p}, model...)
			}
		case 2: // Remove
			ok := s.Remove(k)
			i := find(k)
			if ok != (i >= 0) {
				t.Fatalf("step %d: Remove(%d) mismatch: store=%v model=%v", step, k, ok, i >= 0)
			}
			if ok {
				model = append(model[:i], model[i+1:]...)
			}
		}
		if s.Len() != len(model) {
			t.Fatalf("step %d: Len mismatch: store=%d model=%d", step, s.Len(), len(model))
		}
	}
}
