package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eb-pro/procurement-api/internal/application/dto"
	"github.com/eb-pro/procurement-api/internal/application/usecase"
)

// AIHandler expone el colaborador generativo: análisis, scouting y
// engagement. Los fallos de la IA no producen 5xx: el caso de uso degrada a
// contenido local y el handler siempre responde 200 con el resultado.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// Analyze godoc
// @Summary      Análisis estratégico de inventario y fornitori
// @Description  Devuelve summary, KPIs y recomendaciones. Con la IA caída
//               responde el resumen mínimo local con degraded=true.
// @Tags         ai
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AIAnalysisDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/ai/analyze [post]
func (h *AIHandler) Analyze(c *fiber.Ctx) error {
	out, err := h.uc.Analyze(c.Context())
	if err != nil {
		// Solo errores del dataset (lectura del store); la IA nunca llega aquí.
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Scout godoc
// @Summary      Scouting de fornitori alternativos o competitor
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScoutingRequest  true  "mode ITEM o SUPPLIER + target"
// @Success      200   {object}  dto.ScoutingDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ai/scout [post]
func (h *AIHandler) Scout(c *fiber.Ctx) error {
	var req dto.ScoutingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if req.TargetName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "target_name es requerido"})
	}
	out, err := h.uc.Scout(c.Context(), req)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Engage godoc
// @Summary      Generar contenido RFI, NDA o RFQ para un candidato
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EngagementRequest  true  "type RFI|NDA|RFQ + candidato"
// @Success      200   {object}  dto.EngagementDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ai/engage [post]
func (h *AIHandler) Engage(c *fiber.Ctx) error {
	var req dto.EngagementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if req.CandidateName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "candidate_name es requerido"})
	}
	out, err := h.uc.Engage(c.Context(), req)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}
