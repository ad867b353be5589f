package application

import (
	"context"
	"fmt"
	"go-facade/application/middleware"
	"go-facade/build"
	"go-facade/config"
	"go-facade/util/logger"
	"go-facade/util/observability"
	"net"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"go.uber.org/zap"
)

type HTTPServer interface {
	// Start เปิด port ทันที แล้วค่อย serve ใน goroutine
	Start() error
	Shutdown() error
	Group(prefix string) fiber.Router
	// Handler ใช้ยิง request แบบ in-process ใน test
	Handler() *fiber.App
}

type httpServer struct {
	config config.Config
	app    *fiber.App
}

func newHTTPServer(cfg config.Config, tel *observability.Telemetry) HTTPServer {
	app := fiber.New(fiber.Config{
		AppName: fmt.Sprintf("%s %s", cfg.ServiceName, build.Version),
	})

	// ResponseError อยู่นอก recover เพื่อให้ panic ถูกแปลงเป็น 500 แบบเดียวกับ error อื่น
	app.Use(middleware.Observability(tel.MeterProvider()))
	app.Use(middleware.ResponseError())
	app.Use(cors.New())
	app.Use(recover.New())

	app.Get("/", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"version": build.Version, "time": build.Time})
	})
	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(tel.MetricsHandler()))

	return &httpServer{config: cfg, app: app}
}

func (s *httpServer) Start() error {
	addr := fmt.Sprintf(":%d", s.config.HTTPPort)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	go func() {
		logger.Log().Info("http server started", zap.String("addr", addr))
		if err := s.app.Listener(ln); err != nil {
			logger.Log().Error("http server stopped", zap.Error(err))
		}
	}()
	return nil
}

func (s *httpServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.GracefulTimeout)
	defer cancel()
	return s.app.ShutdownWithContext(ctx)
}

func (s *httpServer) Group(prefix string) fiber.Router {
	return s.app.Group(prefix)
}

func (s *httpServer) Handler() *fiber.App {
	return s.app
}
