package http

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/tradyon/schema-api/internal/application/dto"
	"github.com/tradyon/schema-api/internal/domain"
	"github.com/tradyon/schema-api/pkg/logger"
)

// internalMessage único mensaje que ve el cliente ante un error interno.
const internalMessage = "error interno del servidor"

// writeError traduce los errores de dominio a HTTP. Lo no clasificado es 500 y
// solo se detalla en el log.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Error: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Error: err.Error()})
	}
	log.Error().Err(err).
		Str("request_id", GetRequestID(c)).
		Str("path", c.Path()).
		Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Error: internalMessage})
}

// invalidBody respuesta ante JSON mal formado o tipos incorrectos.
func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Error: "cuerpo inválido"})
}

// pathParam parámetro de ruta decodificado (los nombres pueden llevar espacios).
func pathParam(c *fiber.Ctx, key string) string {
	raw := c.Params(key)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
