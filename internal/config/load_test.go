package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.ConfigPath = writeConfigFile(t, `
runqocc: true
per_cpu: true
interval: 2
times: 30
metrics:
  enable: true
  addr: ":9091"
output:
  type: kafka
  kafka:
    brokers: ["127.0.0.1:9092"]
    topic: runq_occupancy
`)

	require.NoError(t, LoadConfig(&cfg))

	assert.True(t, cfg.Runqocc)
	assert.True(t, cfg.PerCPU)
	assert.Equal(t, 2, cfg.Interval)
	assert.Equal(t, 30, cfg.Times)
	assert.True(t, cfg.Metrics.Enable)
	assert.Equal(t, OutputTypeKafka, cfg.Output.Type)
	assert.Equal(t, "runq_occupancy", cfg.Output.Kafka.Topic)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg := defaultConfig()
	cfg.ConfigPath = "/nonexistent/config.yaml"
	assert.Error(t, LoadConfig(&cfg))
}

func TestLoadConfigInvalidYaml(t *testing.T) {
	cfg := defaultConfig()
	cfg.ConfigPath = writeConfigFile(t, "interval: [not an int")
	assert.Error(t, LoadConfig(&cfg))
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	cfg := defaultConfig()
	cfg.ConfigPath = writeConfigFile(t, "interval: -3")
	assert.Error(t, LoadConfig(&cfg))
}
