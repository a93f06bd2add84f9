package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by LoadFromEnv
const (
	EnvConfig    = "DATAFILTER_CONFIG"
	EnvOutputDir = "DATAFILTER_OUTPUT_DIR"
	EnvPrefix    = "DATAFILTER_PREFIX"
	EnvLogLevel  = "DATAFILTER_LOG_LEVEL"
)

// Config holds the complete application configuration
type Config struct {
	Output  OutputConfig  `toml:"output" yaml:"output"`
	Stats   StatsConfig   `toml:"stats" yaml:"stats"`
	Filter  FilterConfig  `toml:"filter" yaml:"filter"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	Journal JournalConfig `toml:"journal" yaml:"journal"`
}

// OutputConfig holds output file settings
type OutputConfig struct {
	Dir    string `toml:"dir" yaml:"dir"`
	Prefix string `toml:"prefix" yaml:"prefix"`
	Append bool   `toml:"append" yaml:"append"`
}

// StatsConfig selects the statistics printed after a run
type StatsConfig struct {
	Short bool `toml:"short" yaml:"short"`
	Full  bool `toml:"full" yaml:"full"`
}

// FilterConfig holds classification settings. Policy is "leading-token"
// (a numeric first word claims the line) or "whole-line".
type FilterConfig struct {
	Policy string `toml:"policy" yaml:"policy"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `toml:"log_level" yaml:"log_level"`
	Format string `toml:"log_format" yaml:"log_format"`
}

// JournalConfig holds run history settings
type JournalConfig struct {
	Enabled   bool     `toml:"enabled" yaml:"enabled"`
	Path      string   `toml:"path" yaml:"path"`
	Retention Duration `toml:"retention" yaml:"retention"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	return &cfg, nil
}

// LoadFromEnv loads a .env file from the working directory, then the
// configuration named by DATAFILTER_CONFIG or found at a default location,
// then applies environment overrides. Without any config file the defaults
// are used.
func LoadFromEnv() (*Config, error) {
	LoadDotEnv()

	path := os.Getenv(EnvConfig)
	if path == "" {
		path = findDefault()
	}

	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return nil, err
		}
	}

	cfg.ApplyEnv()
	return cfg, nil
}

// LoadDotEnv loads ./.env if present. Variables already set are kept.
func LoadDotEnv() {
	_ = godotenv.Load()
}

func findDefault() string {
	defaultPaths := []string{
		"./configs/datafilter.toml",
		"./datafilter.toml",
		"./datafilter.yaml",
	}
	for _, p := range defaultPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// ApplyEnv overrides settings from DATAFILTER_* environment variables
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.Output.Dir = v
	}
	if v, ok := os.LookupEnv(EnvPrefix); ok {
		c.Output.Prefix = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Output.Dir == "" {
		c.Output.Dir = "."
	}
	if c.Filter.Policy == "" {
		c.Filter.Policy = "leading-token"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Journal.Path == "" {
		c.Journal.Path = "./data/datafilter.db"
	}
	if c.Journal.Retention.Duration == 0 {
		c.Journal.Retention.Duration = 30 * 24 * time.Hour
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.Output.Dir = os.ExpandEnv(c.Output.Dir)
	c.Journal.Path = os.ExpandEnv(c.Journal.Path)
}
