package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/greenops/energydb/internal/config"
	energyerrors "github.com/greenops/energydb/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "energyd-0", cfg.Server.NodeID)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 9090, cfg.Metrics.Port)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  node_id: dc-east-1
  shutdown_timeout: 5s
metrics:
  enabled: false
  port: 9100
logging:
  level: debug
  format: console
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "dc-east-1", cfg.Server.NodeID)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, 9100, cfg.Metrics.Port)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadConfig_ParseError(t *testing.T) {
	path := writeConfig(t, "server: [unterminated")

	_, err := config.LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *config.Config) {},
		},
		{
			name:    "empty node id",
			mutate:  func(c *config.Config) { c.Server.NodeID = "" },
			wantErr: "server.node_id",
		},
		{
			name:    "port out of range",
			mutate:  func(c *config.Config) { c.Metrics.Port = 70000 },
			wantErr: "metrics.port",
		},
		{
			name:    "relative metrics path",
			mutate:  func(c *config.Config) { c.Metrics.Path = "metrics" },
			wantErr: "metrics.path",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *config.Config) { c.Logging.Level = "trace" },
			wantErr: "logging.level",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *config.Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, energyerrors.ErrCodeInvalidConfig, energyerrors.GetCode(err))
		})
	}
}

func TestLoadConfig_InvalidWrapsCode(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: loud\n")

	_, err := config.LoadConfig(path)
	require.Error(t, err)
	assert.True(t, energyerrors.IsEnergyError(err))
	assert.Equal(t, energyerrors.ErrCodeInvalidConfig, energyerrors.GetCode(err))
}
