// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pdiddy/brand-engine/pkg/types"
)

var presetsCmd = &cobra.Command{
	Use:   "presets [id]",
	Short: "List the preset catalog, or show one preset",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := loadEngine()
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		tables := engine.Tables()

		if len(args) == 1 {
			p, ok := tables.Preset(args[0])
			if !ok {
				return fmt.Errorf("unknown preset %q", args[0])
			}
			if format == "table" {
				return writePresetTable(cmd.OutOrStdout(), []types.Preset{p})
			}
			return writeOutput(cmd.OutOrStdout(), p, format)
		}

		if format == "table" {
			return writePresetTable(cmd.OutOrStdout(), tables.Catalog)
		}
		return writeOutput(cmd.OutOrStdout(), tables.Catalog, format)
	},
}

func writePresetTable(w io.Writer, presets []types.Preset) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION")
	for _, p := range presets {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.ID, p.Name, strings.TrimSpace(p.Description))
	}
	return tw.Flush()
}

func init() {
	presetsCmd.Flags().String("format", "table", "output format (table, yaml, json)")
	rootCmd.AddCommand(presetsCmd)
}
