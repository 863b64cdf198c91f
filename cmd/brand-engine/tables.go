// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the effective pattern and preset tables",
	Long: `Tables prints the tables the engine runs with as YAML: the built-in set,
or the file given with --tables after validation. With --out the tables are
written to a file instead, ready to be edited and passed back with --tables.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := loadEngine()
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			return writeOutput(cmd.OutOrStdout(), engine.Tables(), "yaml")
		}
		if err := engine.Tables().WriteYAML(out); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
		return nil
	},
}

func init() {
	tablesCmd.Flags().String("out", "", "write the tables to this file")
	rootCmd.AddCommand(tablesCmd)
}
