package http

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/client-api/pkg/logger"
)

// AppConfig opciones del servidor Fiber.
type AppConfig struct {
	Name         string
	DocsEnabled  bool
	DocsFilePath string
	Logger       *logger.Logger
	// WriteTimeout plazo de cada escritura; en el listado se renueva por elemento.
	// Cero usa 10s.
	WriteTimeout time.Duration
}

// NewApp crea la aplicación Fiber con codificación JSON, manejo de errores, middlewares y /health.
// Las rutas de negocio se registran aparte con Router.
func NewApp(cfg AppConfig) *fiber.App {
	writeTimeout := cfg.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		UnescapePath: true,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: ErrorHandler(cfg.Logger),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(RequestLogger(cfg.Logger.Named("http")))

	// Swagger UI: http://localhost:<port>/docs
	if cfg.DocsEnabled {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.DocsFilePath,
			Path:     "docs",
			Title:    "Client API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.Name})
	})
	return app
}
