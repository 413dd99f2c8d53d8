package server

import (
	"log"

	"swimtrack-be/internal/bootstrap"
	"swimtrack-be/internal/config"
	"swimtrack-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 1 * 1024 * 1024, // 1MB
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type",
	}))

	// Traces every request; spans are dropped unless a provider is installed
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger))

	registerRoutes(app, container, serverutils.JwtMiddleware(cfg.Auth.JwtSecret))

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
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func registerRoutes(app *fiber.App, c *bootstrap.Container, auth fiber.Handler) {
	api := app.Group("/api")

	c.TeamController.RegisterRoutes(api, auth)
	c.SeasonController.RegisterRoutes(api, auth)
	c.MeetController.RegisterRoutes(api, auth)
	c.EventController.RegisterRoutes(api, auth)
	c.PersonController.RegisterRoutes(api, auth)
	c.AthleteController.RegisterRoutes(api, auth)
	c.ResultController.RegisterRoutes(api, auth)

	c.SelectionController.RegisterRoutes(api, auth)
}
