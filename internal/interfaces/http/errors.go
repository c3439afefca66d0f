package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/eb-pro/procurement-api/internal/application/dto"
	"github.com/eb-pro/procurement-api/internal/domain"
)

// writeDomainError mapea los errores de dominio a respuestas HTTP. El orden
// importa: ErrMissingRowIndex es un conflicto de edición (fila obtenida en
// modo búsqueda), no un fallo de validación genérico.
func writeDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingRowIndex):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "MISSING_ROW_INDEX", Message: "registro sin índice de fila: recargar la lista antes de editar",
		})
	case errors.Is(err, domain.ErrAuthenticationRequired):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code: "SHEET_AUTH_REQUIRED", Message: "sesión de Google no activa: las escrituras requieren sign-in",
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "recurso no encontrado",
		})
	case errors.Is(err, domain.ErrWriteFailed):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "WRITE_FAILED", Message: "la hoja de cálculo rechazó la escritura",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
}
