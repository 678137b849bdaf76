package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	energyerrors "github.com/greenops/energydb/internal/errors"
	"gopkg.in/yaml.v3"
)

// ServerConfig holds process configuration
type ServerConfig struct {
	NodeID          string        `yaml:"node_id"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Port    int    `yaml:"port"`
	Path    string `yaml:"path"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config represents the complete configuration for energyd
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Metrics MetricsConfig `yaml:"metrics"`
	Logging LoggingConfig `yaml:"logging"`
}

// LoadConfig loads configuration from a file. A missing file is not an
// error; defaults are used instead.
func LoadConfig(filePath string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	setDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			NodeID:          "energyd-0",
			ShutdownTimeout: 30 * time.Second,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Port:    9090,
			Path:    "/metrics",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// setDefaults fills fields an explicit file left empty
func setDefaults(cfg *Config) {
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 30 * time.Second
	}
	if cfg.Metrics.Port == 0 {
		cfg.Metrics.Port = 9090
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.NodeID == "" {
		return energyerrors.InvalidConfig("server.node_id", "is required")
	}
	if c.Server.ShutdownTimeout < 0 {
		return energyerrors.InvalidConfig("server.shutdown_timeout", "must not be negative")
	}
	if c.Metrics.Port < 1 || c.Metrics.Port > 65535 {
		return energyerrors.InvalidConfig("metrics.port", "must be between 1 and 65535")
	}
	if c.Metrics.Path == "" || c.Metrics.Path[0] != '/' {
		return energyerrors.InvalidConfig("metrics.path", "must start with '/'")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return energyerrors.InvalidConfig("logging.level", "must be one of debug, info, warn, error")
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return energyerrors.InvalidConfig("logging.format", "must be json or console")
	}
	return nil
}
