package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-facade/application"
	"go-facade/build"
	"go-facade/config"
	"go-facade/util/logger"
	"go-facade/util/observability"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err.Error())
	}

	closeLog, err := logger.Init(logger.Options{
		ServiceName: cfg.ServiceName,
		Version:     build.Version,
		Level:       cfg.LogLevel,
		Development: cfg.LogDevelopment,
	})
	if err != nil {
		panic(err.Error())
	}
	defer closeLog()

	tel, err := observability.Init(context.Background(), observability.Options{
		ServiceName:    cfg.ServiceName,
		ServiceVersion: build.Version,
		CollectorAddr:  cfg.OtelCollector,
	})
	if err != nil {
		logger.Log().Fatal("failed to init telemetry", zap.Error(err))
	}

	app := application.New(*cfg, tel)
	app.RegisterRoutes()
	if err := app.Run(); err != nil {
		logger.Log().Fatal("failed to start application", zap.Error(err))
	}

	// รอสัญญาณการปิด
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Log().Info("Shutting down...")

	if err := app.Shutdown(); err != nil {
		logger.Log().Error("failed to shutdown application", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.GracefulTimeout)
	defer cancel()
	if err := tel.Shutdown(ctx); err != nil {
		logger.Log().Error("failed to shutdown telemetry", zap.Error(err))
	}

	logger.Log().Info("Shutdown complete.")
}
