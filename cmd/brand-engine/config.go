// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/pdiddy/brand-engine/internal/recommend"
	"github.com/pdiddy/brand-engine/internal/taxonomy"
	"github.com/pdiddy/brand-engine/pkg/types"
)

func setDefaults() {
	viper.SetDefault("tables.path", "")
	viper.SetDefault("batch.input_dir", "analyses")
	viper.SetDefault("batch.output_dir", "recommendations")
	viper.SetDefault("batch.workers", 4)
	viper.SetDefault("batch.format", string(types.OutputYAML))
	viper.SetDefault("batch.display_name", "")
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.read_timeout", "10s")
	viper.SetDefault("server.write_timeout", "10s")
	viper.SetDefault("server.max_body_bytes", 1<<20)
	viper.SetDefault("server.api_token", "")
}

// loadConfig decodes the merged flag, env, file and default settings.
func loadConfig() (types.EngineConfig, error) {
	var cfg types.EngineConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// loadEngine builds an Engine from the configured tables.
func loadEngine() (*recommend.Engine, types.EngineConfig, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cfg, err
	}
	tables, err := taxonomy.Load(cfg.Tables.Path)
	if err != nil {
		return nil, cfg, err
	}
	return recommend.New(tables), cfg, nil
}

// readAnalysis reads the analysis named by args, or stdin when args is
// empty or "-".
func readAnalysis(args []string, stdin io.Reader) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading analysis %s: %w", args[0], err)
	}
	return string(data), nil
}

// writeOutput encodes v in the named format.
func writeOutput(w io.Writer, v any, format string) error {
	f, err := recommend.ParseFormat(format)
	if err != nil {
		return err
	}
	data, err := recommend.Marshal(v, f)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// stripRaw drops the echoed input so command output stays readable.
func stripRaw(r types.AnalysisResult, keep bool) types.AnalysisResult {
	if !keep {
		r.Raw = ""
	}
	return r
}

func formatFlagUsage() string {
	return "output format (" + strings.Join([]string{string(types.OutputYAML), string(types.OutputJSON)}, ", ") + ")"
}
