package shell

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the interpreter configuration.
// The zero value is not useful; start from DefaultConfig.
type Config struct {
	// MaxArgs bounds how many tokens a single line may produce.
	MaxArgs int `json:"maxArgs" yaml:"maxArgs"`
	// MaxPathLen bounds the length of a cd argument.
	MaxPathLen int `json:"maxPathLen" yaml:"maxPathLen"`
	// HistoryFile, when set, persists input history between sessions.
	HistoryFile string `json:"historyFile" yaml:"historyFile"`
	// Color enables the colored prompt when the output is a terminal.
	Color bool `json:"color" yaml:"color"`
}

func DefaultConfig() *Config {
	return &Config{
		MaxArgs:    DefaultMaxArgs,
		MaxPathLen: DefaultMaxPathLen,
		Color:      true,
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}

	if c.MaxArgs < 2 {
		return fmt.Errorf("maxArgs must be at least 2")
	}

	if c.MaxPathLen <= 0 {
		return fmt.Errorf("maxPathLen must be positive")
	}

	return nil
}

// LoadConfig reads a YAML config file, layering it over the defaults.
// A missing file is not an error; the defaults are returned.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}
