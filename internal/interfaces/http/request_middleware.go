package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/tradyon/schema-api/pkg/logger"
)

// LocalRequestID key de Locals con el identificador de la petición.
const LocalRequestID = "request_id"

// RequestLogger asigna (o propaga) X-Request-ID y registra cada petición con
// método, ruta, estado y latencia.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		rid := c.Get(fiber.HeaderXRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalRequestID, rid)
		c.Set(fiber.HeaderXRequestID, rid)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		ev.Str("request_id", rid).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("http")
		return err
	}
}

// GetRequestID devuelve el X-Request-ID de la petición (después de RequestLogger).
func GetRequestID(c *fiber.Ctx) string {
	v := c.Locals(LocalRequestID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
