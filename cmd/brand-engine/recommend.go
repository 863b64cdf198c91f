// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend [file]",
	Short: "Recommend a renderer config and presets for one analysis",
	Long: `Recommend classifies one analysis, then prints the attribute record, the
questionnaire answers, the renderer configuration and the top presets.

--name overrides the brand name found in the analysis.`,
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
		name, _ := cmd.Flags().GetString("name")
		format, _ := cmd.Flags().GetString("format")
		keepRaw, _ := cmd.Flags().GetBool("raw")

		rec := engine.Recommend(raw, name)
		rec.Analysis = stripRaw(rec.Analysis, keepRaw)
		return writeOutput(cmd.OutOrStdout(), rec, format)
	},
}

func init() {
	recommendCmd.Flags().String("name", "", "brand display name (overrides the detected name)")
	recommendCmd.Flags().String("format", "yaml", formatFlagUsage())
	recommendCmd.Flags().Bool("raw", false, "include the analysis text in the output")
	rootCmd.AddCommand(recommendCmd)
}
