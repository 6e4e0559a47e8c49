package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tool settings. The icon itself is fixed; only where it is
// written and how the run is logged can be changed.
type Config struct {
	Root    string        `yaml:"root"` // project root holding frontend/ and static/
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`  // Log level: debug, info, warn, error (default: warn)
	Format string `yaml:"format"` // Log format: text, json (default: text)
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "warn"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}

// LoadFromFile loads configuration from a YAML file. An empty path yields Default().
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	config.setDefaults()

	switch config.Logging.Format {
	case "text", "json":
	default:
		return nil, fmt.Errorf("logging.format must be text or json, got %q", config.Logging.Format)
	}

	return &config, nil
}

// ResolveRoot picks the project root: an explicit override, then the
// configured root, then the current working directory.
func (c *Config) ResolveRoot(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if c.Root != "" {
		return c.Root, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return cwd, nil
}
