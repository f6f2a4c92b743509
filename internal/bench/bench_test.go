package bench

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rangecache/rangecache/internal/workload"
)

func Test_Run_PathsAgree(t *testing.T) {
	t.Parallel()

	cfg := workload.Config{ArraySize: 2_000, Queries: 5_000, Seed: 11}
	cmp, err := Run(cfg, 200, nil)
	require.NoError(t, err)

	assert.Equal(t, cmp.Baseline.Total, cmp.Cached.Total)
	assert.Equal(t, len(cmp.Baseline.Sums), len(cmp.Cached.Sums))
	assert.NotZero(t, cmp.Cached.Hits, "hot-range workload must produce hits")
}

func Test_RunBaseline_AppliesUpdates(t *testing.T) {
	t.Parallel()

	array := []int32{1, 2, 3, 4}
	queries := []workload.Query{
		{Kind: workload.RangeQuery, Left: 0, Right: 3},
		{Kind: workload.UpdateQuery, Index: 0, Value: 100},
		{Kind: workload.RangeQuery, Left: 0, Right: 3},
	}

	res := RunBaseline(array, queries)
	require.Equal(t, []int64{10, 109}, res.Sums)
	assert.Equal(t, int64(119), res.Total)
	assert.Equal(t, int32(1), array[0], "caller's array must stay untouched")
}

func Test_RunCached_StatsAndInvalidation(t *testing.T) {
	t.Parallel()

	array := []int32{1, 2, 3, 4, 5}
	queries := []workload.Query{
		{Kind: workload.RangeQuery, Left: 0, Right: 4}, // miss
		{Kind: workload.RangeQuery, Left: 0, Right: 4}, // hit
		{Kind: workload.UpdateQuery, Index: 2, Value: 30},
		{Kind: workload.RangeQuery, Left: 0, Right: 4}, // miss again
	}

	res, err := RunCached(array, queries, 10, nil)
	require.NoError(t, err)

	assert.Equal(t, []int64{15, 15, 42}, res.Sums)
	assert.Equal(t, 1, res.Hits)
	assert.Equal(t, 2, res.Misses)
	assert.Equal(t, 1, res.Invalidations)
	assert.Equal(t, 1, res.Resident)
}

func Test_Verify_DetectsDivergence(t *testing.T) {
	t.Parallel()

	a := Result{Sums: []int64{1, 2, 3}}
	b := Result{Sums: []int64{1, 2, 4}}
	assert.Error(t, Verify(a, b))
	assert.Error(t, Verify(a, Result{Sums: []int64{1, 2}}))
	assert.NoError(t, Verify(a, Result{Sums: []int64{1, 2, 3}}))
}

func Test_RunTrials_IndependentSeeds(t *testing.T) {
	t.Parallel()

	cfg := workload.Config{ArraySize: 1_000, Queries: 2_000, Seed: 1}
	trials, err := RunTrials(context.Background(), 4, cfg, 100, nil)
	require.NoError(t, err)
	require.Len(t, trials, 4)

	seeds := map[int64]struct{}{}
	for _, tr := range trials {
		assert.Equal(t, tr.Baseline.Total, tr.Cached.Total)
		seeds[tr.Config.Seed] = struct{}{}
	}
	assert.Len(t, seeds, 4, "each trial must run a distinct seed")
}
