package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/client-api/pkg/logger"
)

// RequestLogger registra una línea por petición con método, ruta, estado y latencia.
// Los errores de la cadena se resuelven aquí con el ErrorHandler para registrar el estado final.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().Config().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Msg("request")
		return nil
	}
}
