package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rangecache/rangecache/internal/ui"
)

var (
	noColor bool
	quiet   bool

	// render is the global renderer for all output
	render *ui.Renderer
)

var rootCmd = &cobra.Command{
	Use:   "rangecache",
	Short: "LRU-cached range-sum queries over a mutable array",
	Long: `rangecache caches range-sum queries over a large mutable numeric array
behind a fixed-capacity LRU store, invalidating exactly the entries a
point update makes stale.

The bench command replays a skewed query workload (mostly repeated hot
ranges, a few updates) through both a naive baseline and the cached path,
checks the two produce identical sums, and reports the timing difference.

Examples:
  # Default workload: 100k elements, 50k queries, capacity 1000
  rangecache bench

  # Smaller array, more updates, fixed seed
  rangecache bench --size 10000 --update-prob 0.1 --seed 42

  # Four independent trials, Prometheus metrics while running
  rangecache bench --trials 4 --metrics-addr :8080`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion sets the version string for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

func init() {
	cobra.OnInitialize(initConfig, initRenderer)

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "Suppress status messages")
}

// initRenderer initializes the global renderer with current settings.
func initRenderer() {
	render = ui.NewRenderer(
		os.Stdout,
		ui.WithNoColor(noColor || os.Getenv("NO_COLOR") != ""),
		ui.WithQuiet(quiet),
	)
}

func initConfig() {
	// Environment variables: RANGECACHE_SEED, RANGECACHE_CAPACITY, ...
	viper.SetEnvPrefix("RANGECACHE")
	viper.AutomaticEnv()
}
