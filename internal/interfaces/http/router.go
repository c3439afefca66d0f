package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/eb-pro/procurement-api/internal/application/auth"
	"github.com/eb-pro/procurement-api/internal/application/usecase"
	"github.com/eb-pro/procurement-api/internal/infrastructure/sheets"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC      *usecase.ItemUseCase
	SupplierUC  *usecase.SupplierUseCase
	CustomerUC  *usecase.CustomerUseCase
	OrderUC     *usecase.OrderUseCase
	MRPUC       *usecase.MRPUseCase
	LogisticsUC *usecase.LogisticsUseCase
	AIUC        *usecase.AIUseCase
	AuthUC      *auth.UseCase
	Profile     *ProfileHandler
	Session     *sheets.Session
	SessionTTL  time.Duration
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Sesión de Google Sheets
	sessionHandler := NewSessionHandler(deps.Session, deps.SessionTTL)
	session := protected.Group("/session/google")
	session.Get("/", sessionHandler.Status)
	session.Post("/begin", sessionHandler.Begin)
	session.Post("/activate", sessionHandler.Activate)
	session.Delete("/", sessionHandler.Clear)

	// Artículos
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Put("/", itemHandler.Update)

	// Fornitori
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Put("/", supplierHandler.Update)

	// Clientes
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Put("/", customerHandler.Update)

	// Órdenes de compra
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Put("/", orderHandler.Update)
	orders.Get("/:id/pdf", orderHandler.ExportPDF)

	// Planner de faltantes
	mrp := protected.Group("/mrp")
	mrpHandler := NewMRPHandler(deps.MRPUC)
	mrp.Get("/", mrpHandler.List)

	// Logística
	logistics := protected.Group("/logistics")
	logisticsHandler := NewLogisticsHandler(deps.LogisticsUC)
	logistics.Get("/", logisticsHandler.List)

	// Colaborador IA
	ai := protected.Group("/ai")
	aiHandler := NewAIHandler(deps.AIUC)
	ai.Post("/analyze", aiHandler.Analyze)
	ai.Post("/scout", aiHandler.Scout)
	ai.Post("/engage", aiHandler.Engage)

	// Perfil de empresa
	protected.Get("/profile", deps.Profile.Get)
}
