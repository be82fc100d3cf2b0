// Command datatool prepares and inspects the role dataset offline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "datatool",
		Short:         "Dataset tooling for the skill roadmap service",
		Long:          "datatool splits large CSV exports, lists their columns, stages them into a database and runs recommendations against local files.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newSplitCmd(),
		newColumnsCmd(),
		newImportCmd(),
		newRecommendCmd(),
	)
	return root
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
