package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gescop/gescop-api/internal/application/dto"
	"github.com/gescop/gescop-api/internal/domain"
	"github.com/gescop/gescop-api/pkg/logger"
)

// Helpers de respuesta: toda la API responde con el sobre dto.APIResponse.

func exito(c *fiber.Ctx, message string, data any, warnings []string) error {
	return c.JSON(dto.APIResponse{Success: true, Message: message, Data: data, Warnings: warnings})
}

func creado(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusCreated).JSON(dto.APIResponse{Success: true, Message: message, Data: data})
}

func fallar(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Data:    dto.ErrorResponse{Code: code, Message: message},
	})
}

// fallarPorError mapea errores de dominio a códigos HTTP. Los errores no
// reconocidos se responden como 500 sin filtrar el detalle interno.
func fallarPorError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidacion):
		return fallar(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, domain.ErrNoEncontrado):
		return fallar(c, fiber.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrOperacionInvalida):
		return fallar(c, fiber.StatusConflict, "INVALID_OPERATION", err.Error())
	case errors.Is(err, domain.ErrDuplicado):
		return fallar(c, fiber.StatusConflict, "DUPLICATE", err.Error())
	case errors.Is(err, domain.ErrUsuarioNoEncontrado), errors.Is(err, domain.ErrNoAutorizado):
		return fallar(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "credenciales inválidas")
	case errors.Is(err, domain.ErrAccesoDenegado):
		return fallar(c, fiber.StatusForbidden, "FORBIDDEN", err.Error())
	default:
		// El detalle no viaja en la respuesta pero sí al log.
		loggerDe(c).Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error no mapeado, se responde 500")
		return fallar(c, fiber.StatusInternalServerError, "INTERNAL", "error interno")
	}
}

// loggerDe recupera el logger inyectado por el router; si no hay (tests que
// montan handlers sueltos), descarta.
func loggerDe(c *fiber.Ctx) *logger.Logger {
	if l, ok := c.Locals(LocalLogger).(*logger.Logger); ok && l != nil {
		return l
	}
	return logger.Nop()
}
