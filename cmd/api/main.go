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

	"github.com/gestorloja/gestor-api/internal/application/auth"
	appfinance "github.com/gestorloja/gestor-api/internal/application/finance"
	"github.com/gestorloja/gestor-api/internal/application/inventory"
	"github.com/gestorloja/gestor-api/internal/application/sales"
	"github.com/gestorloja/gestor-api/internal/application/storefront"
	"github.com/gestorloja/gestor-api/internal/application/usecase"
	infraai "github.com/gestorloja/gestor-api/internal/infrastructure/ai"
	infrapdf "github.com/gestorloja/gestor-api/internal/infrastructure/pdf"
	"github.com/gestorloja/gestor-api/internal/infrastructure/postgres"
	httpRouter "github.com/gestorloja/gestor-api/internal/interfaces/http"
	"github.com/gestorloja/gestor-api/pkg/config"
	"github.com/gestorloja/gestor-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	installmentRepo := postgres.NewInstallmentRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, movementRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, productRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo, cfg.Store.CompanyName, cfg.Store.WhatsAppPhone, cfg.Store.Theme)

	settleSaleUC := sales.NewSettleSaleUseCase(txRunner, clientRepo, productRepo, saleRepo, installmentRepo, invoiceRepo)
	installmentUC := sales.NewInstallmentUseCase(installmentRepo)
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, productRepo, movementRepo)

	clientSummaryUC := appfinance.NewClientSummaryUseCase(clientRepo, saleRepo, installmentRepo)
	dashboardUC := appfinance.NewDashboardUseCase(saleRepo, installmentRepo, productRepo)

	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	aiUC := usecase.NewAIUseCase(geminiSvc, geminiSvc, productRepo)

	// As preferências gravadas têm prioridade sobre os defaults de ambiente
	// (nome da loja e WhatsApp da vitrine são lidos uma vez no startup).
	storeName := cfg.Store.CompanyName
	storePhone := cfg.Store.WhatsAppPhone
	if stored, err := settingsUC.Get(); err == nil && stored != nil {
		storeName = stored.CompanyName
		if stored.WhatsAppPhone != "" {
			storePhone = stored.WhatsAppPhone
		}
	}
	storefrontUC := storefront.NewOrderHandoffUseCase(storeName, storePhone)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	invoiceUC := sales.NewInvoiceUseCase(invoiceRepo, saleRepo, clientRepo, installmentRepo, pdfGenerator, storeName)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestor Loja API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		ProductUC:        productUC,
		CategoryUC:       categoryUC,
		ClientUC:         clientUC,
		ClientSummaryUC:  clientSummaryUC,
		SettleSaleUC:     settleSaleUC,
		InstallmentUC:    installmentUC,
		InvoiceUC:        invoiceUC,
		RegisterMovement: registerMovementUC,
		DashboardUC:      dashboardUC,
		AIUC:             aiUC,
		StorefrontUC:     storefrontUC,
		SettingsUC:       settingsUC,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
