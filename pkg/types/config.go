package types

import "time"

// TablesConfig selects the pattern tables the engine runs with.
type TablesConfig struct {
	// Path is an optional YAML file overriding the built-in tables.
	// Empty means built-in tables only.
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// OutputFormat selects how recommendations are serialized.
type OutputFormat string

const (
	OutputYAML OutputFormat = "yaml"
	OutputJSON OutputFormat = "json"
)

// BatchConfig holds settings for directory-wide recommendation runs.
type BatchConfig struct {
	// InputDir contains analysis text files (*.txt, *.md).
	InputDir string `json:"input_dir" yaml:"input_dir" mapstructure:"input_dir"`

	// OutputDir receives one recommendation file per analysis.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// Workers bounds concurrent file processing (default 4).
	Workers int `json:"workers" yaml:"workers" mapstructure:"workers"`

	// Format selects yaml or json output files.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`

	// DisplayName is applied to every file in the batch when set.
	DisplayName string `json:"display_name" yaml:"display_name" mapstructure:"display_name"`
}

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// ReadTimeout bounds reading a request (default 10s).
	ReadTimeout time.Duration `json:"read_timeout" yaml:"read_timeout" mapstructure:"read_timeout"`

	// WriteTimeout bounds writing a response (default 10s).
	WriteTimeout time.Duration `json:"write_timeout" yaml:"write_timeout" mapstructure:"write_timeout"`

	// MaxBodyBytes caps the request body (default 1 MiB).
	MaxBodyBytes int64 `json:"max_body_bytes" yaml:"max_body_bytes" mapstructure:"max_body_bytes"`

	// APIToken, when set, must be presented as a bearer token.
	APIToken string `json:"api_token,omitempty" yaml:"api_token,omitempty" mapstructure:"api_token"`
}

// EngineConfig groups all configuration sections.
type EngineConfig struct {
	Tables TablesConfig `json:"tables" yaml:"tables" mapstructure:"tables"`
	Batch  BatchConfig  `json:"batch" yaml:"batch" mapstructure:"batch"`
	Server ServerConfig `json:"server" yaml:"server" mapstructure:"server"`
}
