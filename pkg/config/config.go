package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo .env).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	JWT     JWTConfig
	Admin   AdminConfig
	Google  GoogleConfig
	AI      AIConfig
	Profile ProfileConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de los tokens de la API del dashboard.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// AdminConfig credenciales del usuario administrador del dashboard.
// PasswordHash es un hash bcrypt; nunca se configura la contraseña en claro.
type AdminConfig struct {
	Email        string
	PasswordHash string
}

// GoogleConfig acceso a la hoja de cálculo que hace de base de datos.
// AccessToken es opcional: sin él la aplicación arranca en modo semilla de
// solo lectura hasta que el flujo de sign-in entregue un token.
type GoogleConfig struct {
	SpreadsheetID  string
	AccessToken    string
	TokenTTLMinutes int
}

// AIConfig configuración del servicio generativo (Gemini).
type AIConfig struct {
	APIKey       string
	Model        string // análisis estructurado
	ScoutModel   string // scouting con búsqueda web
}

// ProfileConfig datos fiscales de la empresa mostrados en la vista admin.
type ProfileConfig struct {
	CompanyName string
	VATNumber   string
	TaxID       string
	Address     string
	City        string
	ZipCode     string
	Province    string
	Country     string
	Email       string
	Phone       string
	Website     string
	BankName    string
	IBAN        string
	SWIFT       string
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde archivo). Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env en el working dir
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "procurement-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "procurement-api"),
		},
		Admin: AdminConfig{
			Email:        getString(v, "ADMIN_EMAIL", "admin@eb-pro.com"),
			PasswordHash: getString(v, "ADMIN_PASSWORD_HASH", ""),
		},
		Google: GoogleConfig{
			SpreadsheetID:   getString(v, "GOOGLE_SPREADSHEET_ID", ""),
			AccessToken:     getString(v, "GOOGLE_ACCESS_TOKEN", ""),
			TokenTTLMinutes: getInt(v, "GOOGLE_TOKEN_TTL_MINUTES", 55),
		},
		AI: AIConfig{
			APIKey:     getString(v, "GEMINI_API_KEY", ""),
			Model:      getString(v, "GEMINI_MODEL", "gemini-3-flash-preview"),
			ScoutModel: getString(v, "GEMINI_SCOUT_MODEL", "gemini-3-pro-preview"),
		},
		Profile: ProfileConfig{
			CompanyName: getString(v, "PROFILE_COMPANY_NAME", "EB-pro Procurement Solutions S.r.l."),
			VATNumber:   getString(v, "PROFILE_VAT_NUMBER", "IT12345678901"),
			TaxID:       getString(v, "PROFILE_TAX_ID", "12345678901"),
			Address:     getString(v, "PROFILE_ADDRESS", "Via dell'Innovazione Tecnologica, 42"),
			City:        getString(v, "PROFILE_CITY", "Milano"),
			ZipCode:     getString(v, "PROFILE_ZIP_CODE", "20100"),
			Province:    getString(v, "PROFILE_PROVINCE", "MI"),
			Country:     getString(v, "PROFILE_COUNTRY", "Italia"),
			Email:       getString(v, "PROFILE_EMAIL", "admin@eb-pro.com"),
			Phone:       getString(v, "PROFILE_PHONE", "+39 02 555 1234"),
			Website:     getString(v, "PROFILE_WEBSITE", "www.eb-pro.com"),
			BankName:    getString(v, "PROFILE_BANK_NAME", "Intesa Sanpaolo"),
			IBAN:        getString(v, "PROFILE_IBAN", "IT60X0306903200100000012345"),
			SWIFT:       getString(v, "PROFILE_SWIFT", "BCITITMM"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
