package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/eb-pro/procurement-api/internal/application/dto"
	"github.com/eb-pro/procurement-api/internal/infrastructure/sheets"
)

// SessionHandler maneja el ciclo de vida de la sesión de Google Sheets. Hasta
// que no haya token activo la API sirve el dataset semilla de solo lectura.
type SessionHandler struct {
	session *sheets.Session
	ttl     time.Duration
}

// NewSessionHandler construye el handler. ttl es la vida útil del access
// token de Google (típicamente algo menos de una hora).
func NewSessionHandler(session *sheets.Session, ttl time.Duration) *SessionHandler {
	return &SessionHandler{session: session, ttl: ttl}
}

type activateSessionRequest struct {
	AccessToken string `json:"access_token"`
}

type sessionStatusResponse struct {
	State string `json:"state"`
}

// Status godoc
// @Summary      Estado de la sesión de Google
// @Tags         session
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  sessionStatusResponse
// @Router       /api/session/google [get]
func (h *SessionHandler) Status(c *fiber.Ctx) error {
	return c.JSON(sessionStatusResponse{State: h.session.State().String()})
}

// Begin godoc
// @Summary      Iniciar el flujo de sign-in de Google
// @Tags         session
// @Security     Bearer
// @Produce      json
// @Success      202  {object}  sessionStatusResponse
// @Router       /api/session/google/begin [post]
func (h *SessionHandler) Begin(c *fiber.Ctx) error {
	h.session.BeginSignIn()
	return c.Status(fiber.StatusAccepted).JSON(sessionStatusResponse{State: h.session.State().String()})
}

// Activate godoc
// @Summary      Activar la sesión con el access token obtenido
// @Tags         session
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  activateSessionRequest  true  "access_token de Google"
// @Success      200   {object}  sessionStatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/session/google/activate [post]
func (h *SessionHandler) Activate(c *fiber.Ctx) error {
	var req activateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if req.AccessToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "access_token es requerido"})
	}
	h.session.Activate(req.AccessToken, h.ttl)
	return c.JSON(sessionStatusResponse{State: h.session.State().String()})
}

// Clear godoc
// @Summary      Cerrar la sesión de Google (vuelta al modo semilla)
// @Tags         session
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  sessionStatusResponse
// @Router       /api/session/google [delete]
func (h *SessionHandler) Clear(c *fiber.Ctx) error {
	h.session.Clear()
	return c.JSON(sessionStatusResponse{State: h.session.State().String()})
}
