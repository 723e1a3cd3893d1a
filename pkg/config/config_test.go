package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
environment: test
server:
  port: 9090
  read_timeout: 5s
  write_timeout: 5s
  shutdown_timeout: 5s
log:
  level: info
  format: console
  output: stdout
store:
  type: csv
  csv_path: data/draws.csv
engine:
  windows: [30, 50, 100]
  default_window: 50
  hot_count: 25
  cold_count: 15
  batch_size: 5
  max_attempts: 10000
cache:
  enabled: true
  ttl: 5m
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	c, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, "test", c.Environment)
	assert.Equal(t, 9090, c.Server.Port)
	assert.Equal(t, "csv", c.Store.Type)
	assert.Equal(t, []int{30, 50, 100}, c.Engine.Windows)
	assert.Equal(t, 25, c.Engine.HotCount)
	assert.Equal(t, 5*time.Second, c.Server.ReadTimeout.Std())
	assert.Equal(t, 5*time.Minute, c.Cache.TTL.Std())
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("REDIS_ADDR", "redis:6379")
	c, err := LoadWithEnv(writeConfig(t, sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, 7070, c.Server.Port)
	assert.Equal(t, "redis:6379", c.Cache.Redis.Addr)
	assert.True(t, c.Cache.Redis.Enabled)
}

func TestLoadWithEnvBadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	c, err := LoadWithEnv(writeConfig(t, sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, 9090, c.Server.Port)
}

func TestValidateFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing environment", func(c *Config) { c.Environment = "" }},
		{"bad store type", func(c *Config) { c.Store.Type = "postgres" }},
		{"csv without path", func(c *Config) { c.Store.CSVPath = "" }},
		{"no windows", func(c *Config) { c.Engine.Windows = nil }},
		{"negative window", func(c *Config) { c.Engine.Windows = []int{30, -1} }},
		{"zero hot count", func(c *Config) { c.Engine.HotCount = 0 }},
		{"pools over universe", func(c *Config) { c.Engine.HotCount = 31; c.Engine.ColdCount = 15 }},
		{"zero batch", func(c *Config) { c.Engine.BatchSize = 0 }},
		{"kafka without brokers", func(c *Config) { c.Kafka.Enabled = true; c.Kafka.Brokers = nil }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := Load(writeConfig(t, sampleYAML))
			require.NoError(t, err)
			tc.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}
