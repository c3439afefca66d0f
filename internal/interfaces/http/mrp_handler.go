package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eb-pro/procurement-api/internal/application/dto"
	"github.com/eb-pro/procurement-api/internal/application/usecase"
)

// MRPHandler expone el planner de faltantes (protegido).
type MRPHandler struct {
	uc *usecase.MRPUseCase
}

// NewMRPHandler construye el handler.
func NewMRPHandler(uc *usecase.MRPUseCase) *MRPHandler {
	return &MRPHandler{uc: uc}
}

// List godoc
// @Summary      Listar el plan de reaprovisionamiento
// @Description  Calcula faltantes sobre el inventario completo y pagina el
//               resultado; el total refleja el set calculado, no la hoja.
// @Tags         mrp
// @Security     Bearer
// @Produce      json
// @Param        page       query  int     false  "Página"  default(1)
// @Param        page_size  query  int     false  "Tamaño"  default(20)
// @Param        search     query  string  false  "Filtro por nombre o SKU"
// @Success      200  {object}  dto.MRPListResponse
// @Router       /api/mrp [get]
func (h *MRPHandler) List(c *fiber.Ctx) error {
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
