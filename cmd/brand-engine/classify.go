// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [file]",
	Short: "Classify one analysis into brand attributes",
	Long: `Classify reads one vision-model analysis from a file, or from stdin when
no file (or "-") is given, and prints the normalized attribute record.

Structured JSON in the analysis wins over keyword scanning. Empty input
prints the default record.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := loadEngine()
		if err != nil {
			return err
		}
		raw, err := readAnalysis(args, cmd.InOrStdin())
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		keepRaw, _ := cmd.Flags().GetBool("raw")
		return writeOutput(cmd.OutOrStdout(), stripRaw(engine.Classify(raw), keepRaw), format)
	},
}

func init() {
	classifyCmd.Flags().String("format", "yaml", formatFlagUsage())
	classifyCmd.Flags().Bool("raw", false, "include the analysis text in the output")
	rootCmd.AddCommand(classifyCmd)
}
