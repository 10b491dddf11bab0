package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/on-the-ground/splaymemo/bench"
	"github.com/on-the-ground/splaymemo/memostore"
	"github.com/on-the-ground/splaymemo/shared/log"
	"github.com/spf13/cobra"
)

func fibCmd() *cobra.Command {
	cfg := bench.DefaultConfig()
	var noColor bool
	cmd := &cobra.Command{
		Use:   "fib",
		Short: "Times memoized Fibonacci over increasing indices for each backend.",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().IntVar(&cfg.Start, "start", cfg.Start, "First Fibonacci index.")
	cmd.Flags().IntVar(&cfg.Stop, "stop", cfg.Stop, "Indices stay below this value.")
	cmd.Flags().IntVar(&cfg.Step, "step", cfg.Step, "Distance between consecutive indices.")
	cmd.Flags().StringSliceVar(&cfg.Backends, "backends", cfg.Backends,
		"Memo backends to compare, one of: "+strings.Join(memostore.Backends(), ", "))
	cmd.Flags().IntVar(&cfg.LRUSize, "lru-size", cfg.LRUSize, "Capacity of the lru and arc backends.")
	cmd.Flags().Int64Var(&cfg.RistrettoMaxCost, "ristretto-max-cost", cfg.RistrettoMaxCost, "Capacity of the ristretto backend.")
	cmd.Flags().StringVar(&cfg.PlotPath, "plot", "", "Write a plot of the results to this file (.png, .svg, .pdf).")
	cmd.Flags().StringVar(&cfg.MetricsPath, "metrics-file", "", "Write prometheus metrics to this textfile.")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output.")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		report, err := bench.Run(ctx, cfg)
		if err != nil {
			return err
		}

		if err := bench.WriteTable(os.Stdout, report, !noColor); err != nil {
			return fmt.Errorf("error writing table: %w", err)
		}

		if cfg.PlotPath != "" {
			if err := bench.SavePlot(cfg.PlotPath, report); err != nil {
				return err
			}
			log.Effect(ctx, log.LogInfo, "plot written", map[string]interface{}{"path": cfg.PlotPath})
		}

		if cfg.MetricsPath != "" {
			m := bench.NewMetrics()
			m.Observe(report)
			if err := m.WriteTextfile(cfg.MetricsPath); err != nil {
				return err
			}
			log.Effect(ctx, log.LogInfo, "metrics written", map[string]interface{}{"path": cfg.MetricsPath})
		}
		return nil
	}
	return cmd
}
