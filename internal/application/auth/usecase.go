package auth

import (
	"context"
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/eb-pro/procurement-api/internal/domain"
	"github.com/eb-pro/procurement-api/pkg/config"
	"github.com/eb-pro/procurement-api/pkg/jwt"
	"github.com/eb-pro/procurement-api/pkg/logger"
)

// LoginRequest credenciales del administrador del dashboard.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token de sesión de la API.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // segundos
}

// UseCase autenticación del único usuario administrador. Las credenciales
// viven en configuración (email + hash bcrypt); no hay tabla de usuarios.
type UseCase struct {
	cfg *config.Config
	log *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(cfg *config.Config, log *logger.Logger) *UseCase {
	return &UseCase{cfg: cfg, log: log}
}

// Login valida credenciales y emite un JWT. El error es siempre el mismo
// para email y contraseña incorrectos.
func (uc *UseCase) Login(_ context.Context, req LoginRequest) (*LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	if subtle.ConstantTimeCompare([]byte(email), []byte(strings.ToLower(uc.cfg.Admin.Email))) != 1 {
		uc.log.Warn().Str("email", email).Msg("login fallido")
		return nil, domain.ErrAuthenticationRequired
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.cfg.Admin.PasswordHash), []byte(req.Password)); err != nil {
		uc.log.Warn().Str("email", email).Msg("login fallido")
		return nil, domain.ErrAuthenticationRequired
	}

	token, err := jwt.Generate(uc.cfg.JWT.Secret, email, "admin", uc.cfg.JWT.Issuer, uc.cfg.JWT.Expiration)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{Token: token, ExpiresIn: uc.cfg.JWT.Expiration * 60}, nil
}
