package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{"HTTP_PORT", "GRACEFUL_TIMEOUT", "SERVICE_NAME", "OTEL_COLLECTOR", "LOG_LEVEL", "LOG_DEVELOPMENT"}

// ล้างค่าที่เกี่ยวข้องออกจาก environment และคืนค่าเดิมเมื่อจบ test
func unsetConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeDotEnv(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))
	t.Chdir(dir)
}

func TestLoadDefaults(t *testing.T) {
	unsetConfigEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, &Config{
		HTTPPort:        8090,
		GracefulTimeout: 5 * time.Second,
		ServiceName:     "go-facade",
		LogLevel:        "info",
	}, cfg)
}

func TestLoadFromEnv(t *testing.T) {
	unsetConfigEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("GRACEFUL_TIMEOUT", "10s")
	t.Setenv("SERVICE_NAME", "orders")
	t.Setenv("OTEL_COLLECTOR", "otel-collector:4317")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_DEVELOPMENT", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, &Config{
		HTTPPort:        9000,
		GracefulTimeout: 10 * time.Second,
		ServiceName:     "orders",
		OtelCollector:   "otel-collector:4317",
		LogLevel:        "debug",
		LogDevelopment:  true,
	}, cfg)
}

func TestLoadReadsDotEnv(t *testing.T) {
	unsetConfigEnv(t)
	writeDotEnv(t, "HTTP_PORT=9100\nSERVICE_NAME=from-dotenv\n")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.HTTPPort)
	assert.Equal(t, "from-dotenv", cfg.ServiceName)
}

func TestLoadDotEnvDoesNotOverrideEnv(t *testing.T) {
	unsetConfigEnv(t)
	t.Setenv("HTTP_PORT", "9200")
	writeDotEnv(t, "HTTP_PORT=9100\n")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9200, cfg.HTTPPort)
}

func TestLoadMalformedDotEnv(t *testing.T) {
	unsetConfigEnv(t)
	writeDotEnv(t, "SERVICE_NAME=\"unterminated\n")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{HTTPPort: 8090, GracefulTimeout: time.Second, ServiceName: "go-facade", LogLevel: "info"}

	tests := []struct {
		name   string
		mutate func(c *Config)
		want   error
	}{
		{name: "valid", mutate: func(c *Config) {}, want: nil},
		{name: "zero_port", mutate: func(c *Config) { c.HTTPPort = 0 }, want: ErrInvalidHTTPPort},
		{name: "negative_timeout", mutate: func(c *Config) { c.GracefulTimeout = -time.Second }, want: ErrGracefulTimeout},
		{name: "empty_service_name", mutate: func(c *Config) { c.ServiceName = "" }, want: ErrServiceName},
		{name: "unknown_log_level", mutate: func(c *Config) { c.LogLevel = "loud" }, want: ErrLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), tt.want)
		})
	}
}
