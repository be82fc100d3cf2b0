package main

import (
	"fmt"

	"skill-roadmap/internal/dataset"

	"github.com/spf13/cobra"
)

func newSplitCmd() *cobra.Command {
	var (
		maxMB  int64
		outDir string
	)
	cmd := &cobra.Command{
		Use:   "split <csv>",
		Short: "Split a CSV into size-limited parts that each repeat the header",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxMB <= 0 {
				return fmt.Errorf("--max-mb must be positive, got %d", maxMB)
			}
			parts, err := dataset.Splitter{MaxBytes: maxMB * 1024 * 1024, OutDir: outDir}.Split(args[0])
			if err != nil {
				return fmt.Errorf("split %s: %w", args[0], err)
			}
			for _, p := range parts {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&maxMB, "max-mb", dataset.DefaultSplitMaxBytes/(1024*1024), "Maximum part size in MiB")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "Output directory (default <dir>/<name>_split)")
	return cmd
}
