// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Recommend presets for every analysis in a directory",
	Long: `Batch reads every .txt and .md analysis in the input directory and writes
one recommendation file per analysis to the output directory.

Analyses whose recommendation is newer than the input are skipped. A failed
file does not stop the run; the command exits non-zero when any file failed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, cfg, err := loadEngine()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		summary, err := engine.RecommendAll(ctx, cfg.Batch, out)
		fmt.Fprintf(out, "\n%d recommended, %d skipped, %d failed\n",
			summary.Recommended, summary.Skipped, summary.Failed)
		if err != nil {
			return err
		}
		if summary.HasFailures() {
			return fmt.Errorf("%d of %d analyses failed", summary.Failed, summary.Total())
		}
		return nil
	},
}

func init() {
	f := batchCmd.Flags()
	f.String("input-dir", "", "directory of analysis files (default \"analyses\")")
	f.String("output-dir", "", "directory for recommendation files (default \"recommendations\")")
	f.Int("workers", 0, "number of analyses processed concurrently (default 4)")
	f.String("format", "", "recommendation file format, yaml or json (default \"yaml\")")
	f.String("name", "", "brand display name applied to every analysis")

	_ = viper.BindPFlag("batch.input_dir", f.Lookup("input-dir"))
	_ = viper.BindPFlag("batch.output_dir", f.Lookup("output-dir"))
	_ = viper.BindPFlag("batch.workers", f.Lookup("workers"))
	_ = viper.BindPFlag("batch.format", f.Lookup("format"))
	_ = viper.BindPFlag("batch.display_name", f.Lookup("name"))

	rootCmd.AddCommand(batchCmd)
}
