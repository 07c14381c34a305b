package server

import (
	"log"

	"exposurelog-be/internal/bootstrap"
	"exposurelog-be/internal/config"
	"exposurelog-be/internal/pkg/serverutils"

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
		BodyLimit: 1 * 1024 * 1024, // 1MB; message bodies are small
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware(container.Log))

	// Landing page
	app.Get("/", func(ctx *fiber.Ctx) error {
		ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return ctx.SendString(landingPage)
	})

	// Routes
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
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/exposurelog")

	c.MessageController.RegisterRoutes(api)
	c.ExposureController.RegisterRoutes(api)
	c.ConfigurationController.RegisterRoutes(api)
}

const landingPage = `<!DOCTYPE html>
<html>
<head><title>Exposure Log Service</title></head>
<body>
<h1>Exposure Log Service</h1>
<p>Log messages attached to exposures.</p>
<ul>
<li><code>GET /exposurelog/messages</code> — find messages</li>
<li><code>POST /exposurelog/messages</code> — add a message</li>
<li><code>GET /exposurelog/exposures</code> — find exposures</li>
<li><code>GET /exposurelog/configuration</code> — service configuration</li>
</ul>
</body>
</html>
`
