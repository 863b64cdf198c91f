// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the brand-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/brand-engine/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from the secrets directory at startup.
var loadedSecrets secrets.Secrets

// apiToken returns configured when set, else the token from the secrets directory.
func apiToken(configured string) string {
	if configured != "" {
		return configured
	}
	return loadedSecrets.APIToken()
}

// rootCmd is the base command for the brand-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "brand-engine",
	Short: "Classify logo analyses and recommend renderer presets",
	Long: `brand-engine turns the text a vision model writes about a logo into a
normalized set of brand attributes, a renderer configuration and a short
ranked list of presets.

Use "prompt" to get the instruction for the vision model, "classify" or
"recommend" for a single analysis, "batch" for a directory of them and
"serve" to expose the same operations over HTTP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(viper.GetString("secrets_dir"), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "Loaded secrets: %v\n", s.Keys())
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./brand-engine.yaml or ~/.config/brand-engine/brand-engine.yaml)")
	pf.String("tables", "", "YAML file overriding the built-in pattern and preset tables")
	pf.String("secrets-dir", secrets.DefaultDir, "directory holding one file per secret")
	pf.String("log-level", "info", "server log level (debug, info, warn, error)")

	_ = viper.BindPFlag("tables.path", pf.Lookup("tables"))
	_ = viper.BindPFlag("secrets_dir", pf.Lookup("secrets-dir"))
	_ = viper.BindPFlag("log_level", pf.Lookup("log-level"))

	setDefaults()
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("brand-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "brand-engine"))
		}
	}

	viper.SetEnvPrefix("BRAND_ENGINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
