package cmd

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rangecache/rangecache/cache"
	"github.com/rangecache/rangecache/internal/bench"
	"github.com/rangecache/rangecache/internal/ui"
	"github.com/rangecache/rangecache/internal/workload"
	"github.com/rangecache/rangecache/metrics/prom"
)

var (
	benchSize       int
	benchQueries    int
	benchCapacity   int
	benchHotPool    int
	benchHotProb    float64
	benchUpdateProb float64
	benchSeed       int64
	benchTrials     int
	benchMetrics    string
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Compare cached vs uncached range-sum throughput",
	Long: `Replay a deterministic skewed workload through a naive baseline and
through the LRU range-sum cache, verify both paths return identical sums
for every query, and report the wall-clock difference.

Examples:
  rangecache bench
  rangecache bench --size 10000 --queries 20000 --capacity 500
  rangecache bench --trials 4 --seed 7`,
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().IntVar(&benchSize, "size", 100_000, "Backing array length")
	benchCmd.Flags().IntVar(&benchQueries, "queries", 50_000, "Number of operations to replay")
	benchCmd.Flags().IntVar(&benchCapacity, "capacity", 1_000, "Cache capacity (entries)")
	benchCmd.Flags().IntVar(&benchHotPool, "hot-pool", 30, "Number of hot ranges")
	benchCmd.Flags().Float64Var(&benchHotProb, "hot-prob", 0.95, "Share of range queries aimed at the hot pool")
	benchCmd.Flags().Float64Var(&benchUpdateProb, "update-prob", 0.03, "Share of operations that are point updates")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", time.Now().UnixNano(), "Workload seed (fix for reproducible runs)")
	benchCmd.Flags().IntVar(&benchTrials, "trials", 1, "Independent trials run in parallel")
	benchCmd.Flags().StringVar(&benchMetrics, "metrics-addr", "", "Serve Prometheus metrics at addr during the run (e.g. :8080)")

	// Bind flags to viper
	_ = viper.BindPFlag("capacity", benchCmd.Flags().Lookup("capacity"))
	_ = viper.BindPFlag("seed", benchCmd.Flags().Lookup("seed"))
	_ = viper.BindPFlag("metrics_addr", benchCmd.Flags().Lookup("metrics-addr"))
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg := workload.Config{
		ArraySize:  benchSize,
		Queries:    benchQueries,
		HotPool:    benchHotPool,
		HotProb:    benchHotProb,
		UpdateProb: benchUpdateProb,
		Seed:       viper.GetInt64("seed"),
	}
	capacity := viper.GetInt("capacity")
	if benchTrials < 1 {
		return fmt.Errorf("--trials must be >= 1, got %d", benchTrials)
	}

	// Optional Prometheus endpoint for scraping while the bench runs.
	var sink cache.Metrics
	if addr := viper.GetString("metrics_addr"); addr != "" {
		sink = prom.New(nil, "rangecache", "bench", nil)
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			render.Status("metrics: serving at %s", addr)
			log.Println(http.ListenAndServe(addr, nil))
		}()
	}

	render.Status("array size %d, %d queries, capacity %d, seed %d",
		cfg.ArraySize, cfg.Queries, capacity, cfg.Seed)
	render.Status("running %d trial(s)...", benchTrials)

	trials, err := bench.RunTrials(cmd.Context(), benchTrials, cfg, capacity, sink)
	if err != nil {
		render.Error("%v", err)
		return err
	}

	for i, tr := range trials {
		title := "RESULTS"
		if benchTrials > 1 {
			title = fmt.Sprintf("RESULTS (trial %d, seed %d)", i+1, tr.Config.Seed)
		}
		render.Box(title, []ui.Row{
			{Label: "No cache", Value: tr.Baseline.Elapsed.Round(time.Microsecond).String()},
			{Label: "LRU cache", Value: fmt.Sprintf("%s  (speedup %s)",
				tr.Cached.Elapsed.Round(time.Microsecond),
				render.Number(fmt.Sprintf("%.1fx", tr.Speedup())))},
			{Label: "Hit rate", Value: render.Number(fmt.Sprintf("%.2f%%", tr.HitRate())) +
				fmt.Sprintf("  (%d hits, %d misses)", tr.Cached.Hits, tr.Cached.Misses)},
			{Label: "Evictions", Value: fmt.Sprintf("%d", tr.Cached.Evictions)},
			{Label: "Invalidated", Value: fmt.Sprintf("%d entries", tr.Cached.Invalidations)},
			{Label: "Resident", Value: fmt.Sprintf("%d / %d", tr.Cached.Resident, tr.Capacity)},
		})
	}

	render.Success("results match - cached and uncached paths returned identical sums")
	return nil
}
