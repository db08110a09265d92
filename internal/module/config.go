package module

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sarevok-anchev/ansible-modules-extras/internal/rcctl"
)

// DefaultLogLevel is the default log level.
const DefaultLogLevel = "warn"

// Config is the optional module configuration file.
type Config struct {
	// LogLevel is the log level: "debug", "info", "warn", "error".
	// Default: "warn"
	LogLevel string `yaml:"log_level"`

	RCCtl rcctl.Config `yaml:"rcctl"`
}

// ApplyDefaults sets default values for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	c.RCCtl.ApplyDefaults()
}

// Validate checks that values are acceptable.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("module: config: invalid log_level %q", c.LogLevel)
	}
	return c.RCCtl.Validate()
}

// ParseConfig reads a YAML configuration file and returns a Config with
// defaults applied.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("module: config: read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("module: config: parse %s: %w", path, err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultConfig returns a Config with only defaults applied.
func DefaultConfig() *Config {
	var cfg Config
	cfg.ApplyDefaults()
	return &cfg
}
