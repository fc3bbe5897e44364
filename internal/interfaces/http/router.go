package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/client-api/pkg/jwt"
	"github.com/jhoicas/client-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClientService ClientService
	ClientMapper  ClientMapper
	Location      LocationConfig
	Logger        *logger.Logger
	JWTSecret     string // vacío: rutas sin autenticación
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	clientHandler := NewClientHandler(deps.ClientService, deps.ClientMapper, deps.Location, NewValidator(), deps.Logger.Named("client"))

	readGuard, writeGuard := next, next
	clients := app.Group("/v1/client")
	if deps.JWTSecret != "" {
		clients.Use(AuthMiddleware(deps.JWTSecret))
		readGuard = RequireRole(jwt.RoleAdmin, jwt.RoleReader)
		writeGuard = RequireRole(jwt.RoleAdmin)
	}

	clients.Get("/", readGuard, clientHandler.GetAll)
	clients.Get("/:id", readGuard, clientHandler.GetByID)
	clients.Post("/", writeGuard, clientHandler.Create)
	clients.Put("/:id", writeGuard, clientHandler.UpdateByID)
	clients.Delete("/:id", writeGuard, clientHandler.DeleteByID)
	clients.Get("/:identityDocumentNumber/:identityDocumentType", readGuard, clientHandler.GetByIdentityDocument)
}

func next(c *fiber.Ctx) error {
	return c.Next()
}
