package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"github.com/Khoshkhah/routing-engine/graph"
	"github.com/Khoshkhah/routing-engine/loader"
	"github.com/Khoshkhah/routing-engine/routing"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var shortcutsPath, edgesPath, algorithm, configPath string
	var source, target uint32

	cmd := &cobra.Command{
		Use:   "router",
		Short: "query a precomputed hierarchical shortcut graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := defaultConfig()
			if configPath != "" {
				loaded, err := ReadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if shortcutsPath != "" {
				cfg.Shortcuts = shortcutsPath
			}
			if edgesPath != "" {
				cfg.Edges = edgesPath
			}
			if cmd.Flags().Changed("algorithm") {
				cfg.Algorithm = algorithm
			}
			hasQuery := cmd.Flags().Changed("source") || cmd.Flags().Changed("target")
			return run(cfg, source, target, hasQuery)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&shortcutsPath, "shortcuts", "", "path to shortcuts parquet directory or file")
	flags.StringVar(&edgesPath, "edges", "", "path to edge metadata CSV")
	flags.Uint32Var(&source, "source", 0, "source edge id")
	flags.Uint32Var(&target, "target", 0, "target edge id")
	flags.StringVar(&algorithm, "algorithm", "pruned", "algorithm: classic, pruned")
	flags.StringVar(&configPath, "config", "", "path to a yaml run config")

	return cmd
}

func run(cfg RunConfig, source, target uint32, hasQuery bool) error {
	slog.SetDefault(slog.New(NewLogHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.LogLevel)})))

	if cfg.Shortcuts == "" || cfg.Edges == "" {
		return fmt.Errorf("--shortcuts and --edges are required")
	}

	builder := graph.NewBuilder()

	slog.Info("Loading shortcuts from: " + cfg.Shortcuts)
	t0 := time.Now()
	n, err := loader.LoadShortcuts(cfg.Shortcuts, builder)
	if err != nil {
		return fmt.Errorf("failed to load shortcuts: %w", err)
	}
	load_ms := time.Since(t0).Milliseconds()
	slog.Info(fmt.Sprintf("Loaded %d shortcuts in %d ms", n, load_ms))

	slog.Info("Loading edges from: " + cfg.Edges)
	dropped, err := loader.LoadEdgeMetadata(cfg.Edges, builder)
	if err != nil {
		return fmt.Errorf("failed to load edge metadata: %w", err)
	}
	if dropped > 0 {
		slog.Warn(fmt.Sprintf("dropped %d malformed edge metadata rows", dropped))
	}

	store := builder.Build()
	slog.Info(fmt.Sprintf("Loaded %d edges", store.EdgeCount()))

	if !hasQuery {
		slog.Info("No query specified. Use --source and --target.")
		return nil
	}

	slog.Info(fmt.Sprintf("Query: %d -> %d (%s)", source, target, cfg.Algorithm))

	t0 = time.Now()
	var result routing.Result
	if cfg.Algorithm == "classic" {
		result = routing.QueryClassic(store, source, target)
	} else {
		result = routing.QueryPruned(store, source, target)
	}
	query_us := time.Since(t0).Microseconds()

	if !result.Reachable {
		slog.Info("No path found")
		slog.Info(fmt.Sprintf("Query time: %.3f ms", float64(query_us)/1000.0))
		return nil
	}

	slog.Info(fmt.Sprintf("Distance: %v", result.Distance))
	slog.Info(fmt.Sprintf("Path length: %d edges", len(result.Path)))
	slog.Info(fmt.Sprintf("Query time: %.3f ms", float64(query_us)/1000.0))
	slog.Info("Path: " + renderPath(result.Path))

	return nil
}

// renderPath joins up to 10 edge ids with " -> ", appending "..." if the
// path is longer.
func renderPath(path []uint32) string {
	n := len(path)
	if n > 10 {
		n = 10
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = strconv.FormatUint(uint64(path[i]), 10)
	}
	out := strings.Join(parts, " -> ")
	if len(path) > 10 {
		out += " ..."
	}
	return out
}
