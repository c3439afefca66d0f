package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eb-pro/procurement-api/internal/application/dto"
	"github.com/eb-pro/procurement-api/internal/application/usecase"
)

// LogisticsHandler expone el tablero de eventos logísticos (protegido).
type LogisticsHandler struct {
	uc *usecase.LogisticsUseCase
}

// NewLogisticsHandler construye el handler.
func NewLogisticsHandler(uc *usecase.LogisticsUseCase) *LogisticsHandler {
	return &LogisticsHandler{uc: uc}
}

// List godoc
// @Summary      Listar eventos logísticos
// @Tags         logistics
// @Security     Bearer
// @Produce      json
// @Param        page       query  int     false  "Página"  default(1)
// @Param        page_size  query  int     false  "Tamaño"  default(20)
// @Param        search     query  string  false  "Filtro por referencia, courier o tracking"
// @Success      200  {object}  dto.LogisticsListResponse
// @Router       /api/logistics [get]
func (h *LogisticsHandler) List(c *fiber.Ctx) error {
	var q dto.PageQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(c.Context(), q)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}
