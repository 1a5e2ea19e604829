package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestorloja/gestor-api/internal/application/auth"
	appfinance "github.com/gestorloja/gestor-api/internal/application/finance"
	"github.com/gestorloja/gestor-api/internal/application/inventory"
	"github.com/gestorloja/gestor-api/internal/application/sales"
	"github.com/gestorloja/gestor-api/internal/application/storefront"
	"github.com/gestorloja/gestor-api/internal/application/usecase"
	"github.com/gestorloja/gestor-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	ProductUC        *usecase.ProductUseCase
	CategoryUC       *usecase.CategoryUseCase
	ClientUC         *usecase.ClientUseCase
	ClientSummaryUC  *appfinance.ClientSummaryUseCase
	SettleSaleUC     *sales.SettleSaleUseCase
	InstallmentUC    *sales.InstallmentUseCase
	InvoiceUC        *sales.InvoiceUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	DashboardUC      *appfinance.DashboardUseCase
	AIUC             *usecase.AIUseCase
	StorefrontUC     *storefront.OrderHandoffUseCase
	SettingsUC       *usecase.SettingsUseCase
	JWTSecret        string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Vitrine (pública, somente leitura + handoff de pedido)
	store := api.Group("/storefront")
	storefrontHandler := NewStorefrontHandler(deps.StorefrontUC, deps.ProductUC, deps.SettingsUC)
	store.Get("/products", storefrontHandler.ListProducts)
	store.Get("/settings", storefrontHandler.GetSettings)
	store.Post("/orders", storefrontHandler.ComposeOrder)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	stockHandler := NewStockHandler(deps.RegisterMovement)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.ListLowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:id/movements", stockHandler.ListByProduct)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Clients
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC, deps.ClientSummaryUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetDetail)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Sales (liquidação e consulta)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SettleSaleUC, deps.InvoiceUC)
	installmentHandler := NewInstallmentHandler(deps.InstallmentUC)
	salesGroup.Post("/", saleHandler.Settle)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/installments", installmentHandler.ListBySale)
	salesGroup.Get("/:id/invoice", saleHandler.GetInvoice)
	salesGroup.Get("/:id/invoice/pdf", saleHandler.GetInvoicePDF)

	// Installments (quitar e cancelar)
	installments := protected.Group("/installments")
	installments.Post("/:id/pay", installmentHandler.Pay)
	installments.Post("/:id/cancel", installmentHandler.Cancel)

	// Stock (movimentação manual)
	stock := protected.Group("/stock")
	stock.Post("/movements", stockHandler.RegisterMovement)

	// Invoices
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Get("/", invoiceHandler.List)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)

	// IA (ficha de produto)
	ai := protected.Group("/ai")
	aiHandler := NewAIHandler(deps.AIUC)
	ai.Post("/description", aiHandler.GenerateDescription)
	ai.Post("/images", aiHandler.DiscoverImages)

	// Settings (somente admin)
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", RequireRole(entity.RoleAdmin), settingsHandler.Update)
}
