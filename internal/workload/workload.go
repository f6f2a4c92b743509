// Package workload generates the skewed query mix used by the benchmark
// harness: mostly range-sum queries aimed at a small pool of hot ranges,
// with occasional point updates. The skew is what makes caching pay off.
package workload

import "math/rand"

// Kind discriminates the two query variants.
type Kind int

const (
	// RangeQuery asks for the sum of array[Left..Right], inclusive.
	RangeQuery Kind = iota
	// UpdateQuery writes Value to array[Index].
	UpdateQuery
)

// Query is one operation against the backing array.
type Query struct {
	Kind  Kind
	Left  int
	Right int
	Index int
	Value int32
}

// Config describes a deterministic workload. The zero value of every field
// falls back to the defaults below, which mirror the traffic shape the
// cache is tuned for: ~97% range queries, 95% of them hot.
type Config struct {
	ArraySize  int     // backing array length (default 100_000)
	Queries    int     // number of operations (default 50_000)
	HotPool    int     // number of hot ranges (default 30)
	HotProb    float64 // share of range queries aimed at the hot pool (default 0.95)
	UpdateProb float64 // share of operations that are updates (default 0.03)
	Seed       int64   // RNG seed; equal Configs generate equal workloads
}

func (c Config) withDefaults() Config {
	if c.ArraySize <= 0 {
		c.ArraySize = 100_000
	}
	if c.Queries <= 0 {
		c.Queries = 50_000
	}
	if c.HotPool <= 0 {
		c.HotPool = 30
	}
	if c.HotProb <= 0 {
		c.HotProb = 0.95
	}
	if c.UpdateProb <= 0 {
		c.UpdateProb = 0.03
	}
	return c
}

// NewArray builds the seeded backing array with elements in [1, 100].
func (c Config) NewArray() []int32 {
	c = c.withDefaults()
	r := rand.New(rand.NewSource(c.Seed))
	a := make([]int32, c.ArraySize)
	for i := range a {
		a[i] = int32(r.Intn(100) + 1)
	}
	return a
}

// Generate produces the query sequence. Deterministic for a given Config.
func (c Config) Generate() []Query {
	c = c.withDefaults()
	// Offset the seed so the queries don't correlate with the array values.
	r := rand.New(rand.NewSource(c.Seed + 1))
	n := c.ArraySize

	// Hot ranges straddle the midpoint, so they are long and overlap a lot.
	hot := make([]Query, c.HotPool)
	for i := range hot {
		hot[i] = Query{
			Kind:  RangeQuery,
			Left:  r.Intn(n/2 + 1),
			Right: n/2 + r.Intn(n-n/2),
		}
	}

	qs := make([]Query, 0, c.Queries)
	for i := 0; i < c.Queries; i++ {
		if r.Float64() < c.UpdateProb {
			qs = append(qs, Query{
				Kind:  UpdateQuery,
				Index: r.Intn(n),
				Value: int32(r.Intn(100) + 1),
			})
			continue
		}
		if r.Float64() < c.HotProb {
			qs = append(qs, hot[r.Intn(len(hot))])
			continue
		}
		left := r.Intn(n)
		qs = append(qs, Query{
			Kind:  RangeQuery,
			Left:  left,
			Right: left + r.Intn(n-left),
		})
	}
	return qs
}
