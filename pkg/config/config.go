// Package config loads the outages tool settings from a TOML or YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the complete tool configuration
type Config struct {
	Input  InputConfig  `toml:"input" yaml:"input"`
	Parser ParserConfig `toml:"parser" yaml:"parser"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// InputConfig describes the schedule records file
type InputConfig struct {
	Format   string `toml:"format" yaml:"format"`
	Encoding string `toml:"encoding" yaml:"encoding"`
	Header   bool   `toml:"header" yaml:"header"`
	// Columns names the date, time window and address columns of the header.
	// Empty means the first three columns in that order.
	Columns []string `toml:"columns" yaml:"columns"`
}

// ParserConfig holds address parsing settings
type ParserConfig struct {
	Strict  bool `toml:"strict" yaml:"strict"`
	Workers int  `toml:"workers" yaml:"workers"`
	Raw     bool `toml:"raw" yaml:"raw"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
	File   string `toml:"file" yaml:"file"`
}

var (
	inputFormats = []string{"csv", "tsv", "json"}
	logLevels    = []string{"debug", "info", "warn", "error"}
	logFormats   = []string{"text", "json"}
)

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(content)).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Input.Format == "" {
		c.Input.Format = "csv"
	}
	if c.Input.Encoding == "" {
		c.Input.Encoding = "utf-8"
	}
	if c.Parser.Workers == 0 {
		c.Parser.Workers = runtime.GOMAXPROCS(0)
	}
	if c.Log.Level == "" {
		c.Log.Level = "error"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	c.Input.Format = strings.ToLower(c.Input.Format)
	c.Log.Level = strings.ToLower(c.Log.Level)
	c.Log.Format = strings.ToLower(c.Log.Format)
}

// Validate checks that every setting has a usable value
func (c *Config) Validate() error {
	switch {
	case !slices.Contains(inputFormats, c.Input.Format):
		return fmt.Errorf("%w: input format %q", ErrInvalidConfig, c.Input.Format)
	case len(c.Input.Columns) != 0 && len(c.Input.Columns) != 3:
		return fmt.Errorf("%w: expected 3 column names, got %d", ErrInvalidConfig, len(c.Input.Columns))
	case len(c.Input.Columns) != 0 && !c.Input.Header:
		return fmt.Errorf("%w: column names need a header row", ErrInvalidConfig)
	case c.Parser.Workers < 1:
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Parser.Workers)
	case !slices.Contains(logLevels, c.Log.Level):
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Log.Level)
	case !slices.Contains(logFormats, c.Log.Format):
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}
