package logger

import (
	"context"
	"fmt"

	"go.elastic.co/ecszap"
	"go.uber.org/zap"
)

type Options struct {
	ServiceName string
	Version     string
	// ระดับของ log เช่น debug, info, warn, error
	Level string
	// true จะใช้ console encoder ที่อ่านง่ายแทน JSON
	Development bool
}

type closeLog func() error

// ก่อนเรียก Init จะเป็น no-op logger
var baseLogger = zap.NewNop()

// Init สร้าง base logger ที่เขียน log ในรูปแบบ ECS
// ทุกบรรทัดจะมี service.name และ service.version ติดไปด้วย
func Init(opts Options) (closeLog, error) {
	level, err := zap.ParseAtomicLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	config := zap.NewProductionConfig()
	if opts.Development {
		config = zap.NewDevelopmentConfig()
	}
	config.Level = level
	config.EncoderConfig = ecszap.ECSCompatibleEncoderConfig(config.EncoderConfig)

	l, err := config.Build(
		ecszap.WrapCoreOption(),
		zap.Fields(
			zap.String("service.name", opts.ServiceName),
			zap.String("service.version", opts.Version),
		),
	)
	if err != nil {
		return nil, err
	}
	baseLogger = l

	return func() error {
		return l.Sync()
	}, nil
}

func Log() *zap.Logger {
	return baseLogger
}

type loggerKey struct{}

func NewContext(parent context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(parent, loggerKey{}, logger)
}

// FromContext คืน logger ของ request ถ้าไม่มีจะได้ base logger
func FromContext(ctx context.Context) *zap.Logger {
	if log, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok {
		return log
	}
	return baseLogger
}
