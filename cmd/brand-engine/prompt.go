// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the instruction for the vision model",
	Long: `Prompt prints the instruction to send to the vision model along with the
logo image. The vocabularies in it come from the loaded tables, so the
model answers in terms the classifier understands.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := loadEngine()
		if err != nil {
			return err
		}
		brand, _ := cmd.Flags().GetString("brand")
		text, err := engine.Prompt(brand)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
		return err
	},
}

func init() {
	promptCmd.Flags().String("brand", "", "brand name to mention in the prompt")
	rootCmd.AddCommand(promptCmd)
}
