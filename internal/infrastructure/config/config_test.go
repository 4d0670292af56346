package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  port: 9090
  rateLimit:
    requestsPerSecond: 2
    burst: 4
logger:
  level: debug
  format: console
session:
  store: memory
  ttl: 5
inference:
  modelPath: /models/lgb_model.txt
  threshold: 0.4
  encoderSource: file
  encoderPath: /models/label_encoder.yaml
`

func writeConfig(t *testing.T, env, body string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(body), 0o600))
	t.Setenv("FD_CONFIG_DIR", dir)
	t.Setenv("FD_ENV", env)
}

func TestLoadConfig(t *testing.T) {
	writeConfig(t, Test, testYAML)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 2.0, cfg.Server.RateLimit.RequestsPerSecond)
	assert.Equal(t, 4, cfg.Server.RateLimit.Burst)
	assert.Equal(t, 10*time.Minute, cfg.Server.RateLimit.IdleTimeout)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, 5*time.Minute, cfg.Session.TTL)
	assert.Equal(t, "fd_session", cfg.Session.CookieName)
	assert.False(t, cfg.Session.Redis.Enabled)
	assert.Equal(t, 0.4, cfg.Inference.Threshold)
	assert.Equal(t, "/models/lgb_model.txt", cfg.Inference.ModelPath)
	assert.False(t, cfg.UsesDatabase())
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	writeConfig(t, Test, testYAML)
	t.Setenv("FD_SERVER_PORT", "7070")
	t.Setenv("FD_MODEL_PATH", "/override/model.txt")
	t.Setenv("FD_DB_PASSWORD", "s3cret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "/override/model.txt", cfg.Inference.ModelPath)
	assert.Equal(t, "s3cret", cfg.Database.Password)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad threshold", "inference:\n  threshold: 1.5\n"},
		{"unknown store", "session:\n  store: etcd\n"},
		{"redis without address", "session:\n  store: redis\n"},
		{"bad encoder source", "inference:\n  encoderSource: s3\n"},
		{"bad log level", "logger:\n  level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writeConfig(t, Test, tt.yaml)
			_, err := LoadConfig()
			assert.ErrorContains(t, err, "invalid configuration")
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("FD_CONFIG_DIR", t.TempDir())
	t.Setenv("FD_ENV", "staging")

	_, err := LoadConfig()
	assert.Error(t, err)
}
