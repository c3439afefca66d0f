package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/eb-pro/procurement-api/internal/application/auth"
	"github.com/eb-pro/procurement-api/internal/application/usecase"
	"github.com/eb-pro/procurement-api/internal/domain/entity"
	infraai "github.com/eb-pro/procurement-api/internal/infrastructure/ai"
	infrapdf "github.com/eb-pro/procurement-api/internal/infrastructure/pdf"
	"github.com/eb-pro/procurement-api/internal/infrastructure/sheets"
	httpRouter "github.com/eb-pro/procurement-api/internal/interfaces/http"
	"github.com/eb-pro/procurement-api/pkg/config"
	"github.com/eb-pro/procurement-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Sesión de Google Sheets. Con token en configuración arranca activa;
	// sin él, la API sirve el dataset semilla hasta el sign-in.
	session := sheets.NewSession()
	sessionTTL := time.Duration(cfg.Google.TokenTTLMinutes) * time.Minute
	if cfg.Google.AccessToken != "" {
		session.Activate(cfg.Google.AccessToken, sessionTTL)
		log.Info().Msg("sesión de Google activada desde configuración")
	} else {
		log.Info().Msg("sin token de Google: modo semilla de solo lectura")
	}

	sheetsClient := sheets.NewClient()
	store := sheets.NewStore(sheetsClient, session, cfg.Google.SpreadsheetID, log)

	profile := entity.CompanyProfile{
		CompanyName: cfg.Profile.CompanyName,
		VATNumber:   cfg.Profile.VATNumber,
		TaxID:       cfg.Profile.TaxID,
		Address:     cfg.Profile.Address,
		City:        cfg.Profile.City,
		ZipCode:     cfg.Profile.ZipCode,
		Province:    cfg.Profile.Province,
		Country:     cfg.Profile.Country,
		Email:       cfg.Profile.Email,
		Phone:       cfg.Profile.Phone,
		Website:     cfg.Profile.Website,
		BankName:    cfg.Profile.BankName,
		IBAN:        cfg.Profile.IBAN,
		SWIFT:       cfg.Profile.SWIFT,
	}

	itemUC := usecase.NewItemUseCase(store.Items())
	supplierUC := usecase.NewSupplierUseCase(store.Suppliers())
	customerUC := usecase.NewCustomerUseCase(store.Customers())
	mrpUC := usecase.NewMRPUseCase(store.Items())
	logisticsUC := usecase.NewLogisticsUseCase()

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	orderUC := usecase.NewOrderUseCase(store.Orders(), store.Suppliers(), pdfGenerator, profile)

	geminiSvc := infraai.NewGeminiService(cfg.AI.APIKey, cfg.AI.Model, cfg.AI.ScoutModel)
	aiUC := usecase.NewAIUseCase(geminiSvc, store.Items(), store.Suppliers(), profile.CompanyName, log)

	authUC := auth.NewUseCase(cfg, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // el scouting con búsqueda web es lento
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "EB-pro Procurement API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": cfg.App.Name,
			"session": session.State().String(),
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:      itemUC,
		SupplierUC:  supplierUC,
		CustomerUC:  customerUC,
		OrderUC:     orderUC,
		MRPUC:       mrpUC,
		LogisticsUC: logisticsUC,
		AIUC:        aiUC,
		AuthUC:      authUC,
		Profile:     httpRouter.NewProfileHandler(profile),
		Session:     session,
		SessionTTL:  sessionTTL,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
