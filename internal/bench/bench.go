// Package bench runs the comparison the cache exists to win: the same query
// sequence executed once by naive recomputation and once through the
// range-sum cache, wall-clock timed, with every returned sum checked for
// equality between the two paths.
package bench

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rangecache/rangecache/cache"
	"github.com/rangecache/rangecache/internal/workload"
	"github.com/rangecache/rangecache/rangesum"
)

// Result captures one pass over a query sequence.
type Result struct {
	Sums    []int64 // per-range-query sums, in query order
	Total   int64
	Elapsed time.Duration

	// Cached-path statistics; zero for the baseline.
	Hits          int
	Misses        int
	Evictions     int
	Invalidations int
	Resident      int
}

// RunBaseline executes the queries by direct summation on a private copy of
// the array. Updates are applied in place.
func RunBaseline(array []int32, queries []workload.Query) Result {
	a := append([]int32(nil), array...)
	sums := make([]int64, 0, len(queries))
	var total int64

	start := time.Now()
	for _, q := range queries {
		if q.Kind == workload.UpdateQuery {
			a[q.Index] = q.Value
			continue
		}
		var sum int64
		for _, v := range a[q.Left : q.Right+1] {
			sum += int64(v)
		}
		sums = append(sums, sum)
		total += sum
	}
	return Result{Sums: sums, Total: total, Elapsed: time.Since(start)}
}

// InvalidationSink is implemented by metrics backends that also track
// entries dropped by invalidation (e.g. metrics/prom.Adapter).
type InvalidationSink interface{ Invalidated(removed int) }

// counters collects store signals for the benchmark report and forwards
// them to an optional external sink.
type counters struct {
	hits, misses, evicts, invalidated int

	forward cache.Metrics // may be nil
}

func (m *counters) Hit() {
	m.hits++
	if m.forward != nil {
		m.forward.Hit()
	}
}

func (m *counters) Miss() {
	m.misses++
	if m.forward != nil {
		m.forward.Miss()
	}
}

func (m *counters) Evict() {
	m.evicts++
	if m.forward != nil {
		m.forward.Evict()
	}
}

func (m *counters) Size(entries int) {
	if m.forward != nil {
		m.forward.Size(entries)
	}
}

var _ cache.Metrics = (*counters)(nil)

// RunCached executes the same queries through a fresh rangesum.Cache on a
// private copy of the array, invalidating after every update before the
// next read. sink may be nil; pass a backend such as prom.Adapter to export
// the run's cache traffic.
func RunCached(array []int32, queries []workload.Query, capacity int, sink cache.Metrics) (Result, error) {
	a := append([]int32(nil), array...)
	m := &counters{forward: sink}
	c, err := rangesum.New[int32, int64](rangesum.Options{
		Capacity: capacity,
		Metrics:  m,
		OnInvalidate: func(_, removed int) {
			m.invalidated += removed
			if s, ok := sink.(InvalidationSink); ok {
				s.Invalidated(removed)
			}
		},
	})
	if err != nil {
		return Result{}, fmt.Errorf("build cache: %w", err)
	}

	sums := make([]int64, 0, len(queries))
	var total int64

	start := time.Now()
	for _, q := range queries {
		if q.Kind == workload.UpdateQuery {
			a[q.Index] = q.Value
			if err := c.Invalidate(q.Index, a); err != nil {
				return Result{}, fmt.Errorf("invalidate index %d: %w", q.Index, err)
			}
			continue
		}
		sum, err := c.QuerySum(q.Left, q.Right, a)
		if err != nil {
			return Result{}, fmt.Errorf("query [%d, %d]: %w", q.Left, q.Right, err)
		}
		sums = append(sums, sum)
		total += sum
	}
	return Result{
		Sums:          sums,
		Total:         total,
		Elapsed:       time.Since(start),
		Hits:          m.hits,
		Misses:        m.misses,
		Evictions:     m.evicts,
		Invalidations: m.invalidated,
		Resident:      c.Len(),
	}, nil
}

// Verify checks that the two paths produced identical sums for every query.
func Verify(baseline, cached Result) error {
	if len(baseline.Sums) != len(cached.Sums) {
		return fmt.Errorf("sum count mismatch: baseline %d, cached %d", len(baseline.Sums), len(cached.Sums))
	}
	for i := range baseline.Sums {
		if baseline.Sums[i] != cached.Sums[i] {
			return fmt.Errorf("query #%d: baseline sum %d, cached sum %d", i, baseline.Sums[i], cached.Sums[i])
		}
	}
	return nil
}

// Comparison is one full trial: the same workload through both paths.
type Comparison struct {
	Config   workload.Config
	Capacity int
	Baseline Result
	Cached   Result
}

// Speedup is the baseline-to-cached elapsed ratio.
func (c Comparison) Speedup() float64 {
	if c.Cached.Elapsed <= 0 {
		return 0
	}
	return c.Baseline.Elapsed.Seconds() / c.Cached.Elapsed.Seconds()
}

// HitRate is the share of range queries served from cache, in percent.
func (c Comparison) HitRate() float64 {
	reads := c.Cached.Hits + c.Cached.Misses
	if reads == 0 {
		return 0
	}
	return float64(c.Cached.Hits) / float64(reads) * 100
}

// Run executes one trial and verifies the two paths agree.
// sink may be nil; it is shared across trials, so it must be goroutine-safe
// when used with RunTrials (Prometheus metric types are).
func Run(cfg workload.Config, capacity int, sink cache.Metrics) (Comparison, error) {
	array := cfg.NewArray()
	queries := cfg.Generate()

	baseline := RunBaseline(array, queries)
	cached, err := RunCached(array, queries, capacity, sink)
	if err != nil {
		return Comparison{}, err
	}
	if err := Verify(baseline, cached); err != nil {
		return Comparison{}, fmt.Errorf("paths diverged: %w", err)
	}
	return Comparison{Config: cfg, Capacity: capacity, Baseline: baseline, Cached: cached}, nil
}

// RunTrials executes n independent trials in parallel, each with a derived
// seed. Every trial owns its array and cache, so the store's single-owner
// contract holds; only whole trials run concurrently.
func RunTrials(ctx context.Context, n int, cfg workload.Config, capacity int, sink cache.Metrics) ([]Comparison, error) {
	out := make([]Comparison, n)
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		trialCfg := cfg
		trialCfg.Seed = cfg.Seed + int64(i)*9973
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cmp, err := Run(trialCfg, capacity, sink)
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			out[i] = cmp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
