package main

import (
	"context"
	"fmt"
	"os"

	"github.com/on-the-ground/splaymemo/shared/log"
	"github.com/spf13/cobra"
)

func main() {
	var verbose bool
	cmd := &cobra.Command{
		Use:           "splaybench",
		Short:         "Compares a splay tree memo store against other caches.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every evaluation at debug level.")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		ctx, _ := log.WithZapHandler(cmd.Context(), log.NewCLILogger(verbose))
		cmd.SetContext(ctx)
	}
	cmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		_ = log.Logger(cmd.Context()).Sync()
	}

	cmd.AddCommand(fibCmd(), rangeSumCmd(), treeCmd())

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
