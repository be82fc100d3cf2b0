package main

import (
	"fmt"
	"time"

	"skill-roadmap/internal/dataset"

	"github.com/spf13/cobra"
)

func newColumnsCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "columns <location>",
		Short: "Print the column names of a CSV file or URL, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := dataset.NewCSVSource(dataset.NewHTTPFetcher(timeout))
			header, err := src.ReadHeader(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("columns %s: %w", args[0], err)
			}
			for _, h := range header {
				fmt.Fprintln(cmd.OutOrStdout(), h)
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", dataset.DefaultFetchTimeout, "Timeout for remote locations")
	return cmd
}
