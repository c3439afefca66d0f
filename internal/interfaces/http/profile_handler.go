package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eb-pro/procurement-api/internal/application/dto"
	"github.com/eb-pro/procurement-api/internal/domain/entity"
)

// ProfileHandler expone los datos fiscales de la empresa (vista admin).
// El perfil viene de configuración; no hay escritura.
type ProfileHandler struct {
	profile entity.CompanyProfile
}

// NewProfileHandler construye el handler.
func NewProfileHandler(profile entity.CompanyProfile) *ProfileHandler {
	return &ProfileHandler{profile: profile}
}

// Get godoc
// @Summary      Perfil fiscal y bancario de la empresa
// @Tags         profile
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProfileResponse
// @Router       /api/profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	return c.JSON(dto.ProfileResponse{
		CompanyName: h.profile.CompanyName,
		VATNumber:   h.profile.VATNumber,
		TaxID:       h.profile.TaxID,
		Address:     h.profile.Address,
		City:        h.profile.City,
		ZipCode:     h.profile.ZipCode,
		Province:    h.profile.Province,
		Country:     h.profile.Country,
		Email:       h.profile.Email,
		Phone:       h.profile.Phone,
		Website:     h.profile.Website,
		BankName:    h.profile.BankName,
		IBAN:        h.profile.IBAN,
		SWIFT:       h.profile.SWIFT,
	})
}
