package http

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eb-pro/procurement-api/internal/application/dto"
	"github.com/eb-pro/procurement-api/internal/domain"
	"github.com/eb-pro/procurement-api/pkg/jwt"
)

const testSecret = "secret-de-pruebas"

// newProtectedApp crea una app mínima con una ruta protegida que devuelve
// el user_id extraído del token.
func newProtectedApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/protegida", AuthMiddleware(testSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": GetUserID(c), "role": GetRole(c)})
	})
	return app
}

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := newProtectedApp(t)

	req := httptest.NewRequest("GET", "/protegida", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "MISSING_TOKEN", body.Code)
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := newProtectedApp(t)

	for _, header := range []string{"token-sin-esquema", "Basic abc123"} {
		req := httptest.NewRequest("GET", "/protegida", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "header: %s", header)
	}
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app := newProtectedApp(t)

	// Token firmado con otro secreto
	otro, err := jwt.Generate("otro-secreto", "admin@eb-pro.com", "admin", "test", 5)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+otro)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INVALID_TOKEN", body.Code)
}

func TestAuthMiddleware_TokenValido(t *testing.T) {
	app := newProtectedApp(t)

	token, err := jwt.Generate(testSecret, "admin@eb-pro.com", "admin", "test", 5)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "admin@eb-pro.com", body["user_id"])
	assert.Equal(t, "admin", body["role"])
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	app := newProtectedApp(t)

	// Expiración negativa → token ya vencido al emitirse
	token, err := jwt.Generate(testSecret, "admin@eb-pro.com", "admin", "test", -1)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// ── Mapeo de errores de dominio ───────────────────────────────────────────────

func TestWriteDomainError_Mapeo(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"row index ausente", domain.ErrMissingRowIndex, fiber.StatusConflict, "MISSING_ROW_INDEX"},
		{"sin sesión de hoja", domain.ErrAuthenticationRequired, fiber.StatusForbidden, "SHEET_AUTH_REQUIRED"},
		{"entrada inválida", domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
		{"no encontrado", domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{"escritura rechazada", domain.ErrWriteFailed, fiber.StatusBadGateway, "WRITE_FAILED"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/x", func(c *fiber.Ctx) error {
				return writeDomainError(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.wantStatus, resp.StatusCode)

			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.wantCode, body.Code)
		})
	}
}
