package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/on-the-ground/splaymemo/shared/log"
	"github.com/on-the-ground/splaymemo/workload"
	"github.com/spf13/cobra"
)

func rangeSumCmd() *cobra.Command {
	cfg := workload.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "rangesum",
		Short: "Replays random range-sum and update queries with and without caching.",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().IntVar(&cfg.Size, "size", cfg.Size, "Array length.")
	cmd.Flags().IntVar(&cfg.Queries, "queries", cfg.Queries, "Number of queries.")
	cmd.Flags().IntVar(&cfg.MaxValue, "max-value", cfg.MaxValue, "Values are drawn from [1, max-value].")
	cmd.Flags().Float64Var(&cfg.RangeFraction, "range-fraction", cfg.RangeFraction, "Share of range queries; the rest are updates.")
	cmd.Flags().IntVar(&cfg.CacheSize, "cache-size", cfg.CacheSize, "Capacity of the LRU cache.")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed.")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		array, queries, err := workload.Generate(cfg)
		if err != nil {
			return err
		}
		log.Effect(ctx, log.LogInfo, "workload generated", map[string]interface{}{
			"size":        cfg.Size,
			"queries":     len(queries),
			"fingerprint": fmt.Sprintf("%016x", workload.Fingerprint(queries)),
		})

		lruSummer, err := workload.NewLRUCached(array, cfg.CacheSize)
		if err != nil {
			return err
		}
		splaySummer := workload.NewSplayCached(array)

		runs := []struct {
			name   string
			summer workload.Summer
		}{
			{"without cache", workload.NewUncached(array)},
			{"with LRU cache", lruSummer},
			{"with splay cache", splaySummer},
		}

		var baseline workload.Result
		for i, r := range runs {
			color.Yellow("Running benchmark %s...", r.name)
			res, err := workload.Replay(ctx, r.summer, queries)
			if err != nil {
				return err
			}
			if i == 0 {
				baseline = res
				color.Red("Execution time %s: %.2f seconds", r.name, res.Elapsed.Seconds())
				continue
			}
			if res.Checksum != baseline.Checksum {
				return fmt.Errorf("%s: checksum %d, want %d", r.name, res.Checksum, baseline.Checksum)
			}
			color.Green("Execution time %s: %.2f seconds", r.name, res.Elapsed.Seconds())
			if res.Elapsed < baseline.Elapsed {
				color.Cyan("Cache is %.2fx faster!", baseline.Elapsed.Seconds()/res.Elapsed.Seconds())
			} else {
				color.Red("Cache did not improve speed!")
			}
		}

		for _, s := range []struct {
			name  string
			stats workload.CacheStats
		}{{"lru", lruSummer.Stats()}, {"splay", splaySummer.Stats()}} {
			log.Effect(ctx, log.LogInfo, "cache stats", map[string]interface{}{
				"cache":  s.name,
				"hits":   humanize.Comma(int64(s.stats.Hits)),
				"misses": humanize.Comma(int64(s.stats.Misses)),
				"resets": humanize.Comma(int64(s.stats.Resets)),
			})
		}
		return nil
	}
	return cmd
}
