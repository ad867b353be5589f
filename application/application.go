package application

import (
	"fmt"
	"go-facade/config"
	"go-facade/handler"
	"go-facade/service"
	"go-facade/util/logger"
	"go-facade/util/observability"
)

type Application struct {
	config     config.Config
	telemetry  *observability.Telemetry
	httpServer HTTPServer
}

func New(cfg config.Config, tel *observability.Telemetry) *Application {
	return &Application{
		config:     cfg,
		telemetry:  tel,
		httpServer: newHTTPServer(cfg, tel),
	}
}

func (app *Application) Run() error {
	return app.httpServer.Start()
}

func (app *Application) Shutdown() error {
	logger.Log().Info("Shutting down server")
	if err := app.httpServer.Shutdown(); err != nil {
		return fmt.Errorf("failed to shutdown http server: %w", err)
	}
	logger.Log().Info("Server stopped")

	return nil
}

// route ของ facade อยู่ที่ root ไม่มี prefix
func (app *Application) RegisterRoutes() {
	facade := service.NewFacade(service.WithMeterProvider(app.telemetry.MeterProvider()))
	handler.NewFacadeHandler(facade).RegisterRoutes(app.httpServer.Group(""))
}
