package server

import (
	"encoding/json"
	"time"

	"stembills-dashboard/internal/bootstrap"
	"stembills-dashboard/internal/config"
	"stembills-dashboard/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Title,
		BodyLimit:             1 * 1024 * 1024,
		DisableStartupMessage: !cfg.App.Debug,
		EnablePrintRoutes:     cfg.App.Debug,
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.CorsAllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.RequestLogger(container.Logger))
	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger))

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	s.container.Logger.Info("Server", "Dashboard is running", map[string]interface{}{
		"url": "http://" + s.cfg.App.Addr(),
	})
	return s.app.Listen(s.cfg.App.Addr())
}

// Shutdown tells connected pages the server is going away, then drains requests.
func (s *Server) Shutdown() error {
	notice, _ := json.Marshal(map[string]string{"notice": "server shutting down"})
	s.container.WebSocketHub.Broadcast(notice)
	return s.app.ShutdownWithTimeout(shutdownTimeout)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	c.DashboardController.RegisterRoutes(app)
	c.DatasetController.RegisterRoutes(app)
	c.UpdateHandler.RegisterRoutes(app)
}
