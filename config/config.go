package config

import (
	"errors"
	"fmt"
	"go-facade/util/env"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

var (
	ErrInvalidHTTPPort = errors.New("HTTP_PORT must be a positive integer")
	ErrGracefulTimeout = errors.New("GRACEFUL_TIMEOUT must be a positive duration")
	ErrServiceName     = errors.New("SERVICE_NAME must be set")
	ErrLogLevel        = errors.New("LOG_LEVEL must be one of debug, info, warn, error")
)

type Config struct {
	HTTPPort        int
	GracefulTimeout time.Duration
	ServiceName     string
	OtelCollector   string
	LogLevel        string
	LogDevelopment  bool
}

// Load อ่านไฟล์ .env (ถ้ามี) แล้วอ่านค่าจาก environment
// ค่าที่ตั้งใน environment อยู่แล้วจะไม่ถูกทับด้วยค่าใน .env
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	config := &Config{
		HTTPPort:        env.GetIntDefault("HTTP_PORT", 8090),
		GracefulTimeout: env.GetDurationDefault("GRACEFUL_TIMEOUT", 5*time.Second),
		ServiceName:     env.GetDefault("SERVICE_NAME", "go-facade"),
		OtelCollector:   env.Get("OTEL_COLLECTOR"),
		LogLevel:        env.GetDefault("LOG_LEVEL", "info"),
		LogDevelopment:  env.GetBoolDefault("LOG_DEVELOPMENT", false),
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Validate() error {
	if c.HTTPPort <= 0 {
		return ErrInvalidHTTPPort
	}
	if c.GracefulTimeout <= 0 {
		return ErrGracefulTimeout
	}
	if len(c.ServiceName) == 0 {
		return ErrServiceName
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return ErrLogLevel
	}

	return nil
}
