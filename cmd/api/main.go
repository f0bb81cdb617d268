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

	"github.com/operix/plataforma-api/internal/application/auth"
	"github.com/operix/plataforma-api/internal/application/board"
	"github.com/operix/plataforma-api/internal/application/crm"
	"github.com/operix/plataforma-api/internal/application/fieldservice"
	"github.com/operix/plataforma-api/internal/application/finance"
	"github.com/operix/plataforma-api/internal/application/inventory"
	"github.com/operix/plataforma-api/internal/application/portal"
	"github.com/operix/plataforma-api/internal/application/projects"
	"github.com/operix/plataforma-api/internal/application/reports"
	"github.com/operix/plataforma-api/internal/application/usecase"
	"github.com/operix/plataforma-api/internal/infrastructure/postgres"
	httpRouter "github.com/operix/plataforma-api/internal/interfaces/http"
	"github.com/operix/plataforma-api/pkg/config"
	"github.com/operix/plataforma-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	oppRepo := postgres.NewOpportunityRepository(pool)
	quoteRepo := postgres.NewQuoteRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	riskRepo := postgres.NewRiskRepository(pool)
	interventionRepo := postgres.NewInterventionRepository(pool)
	hardwareRepo := postgres.NewHardwareRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	ticketRepo := postgres.NewTicketRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	clientUC := crm.NewClientUseCase(clientRepo)
	opportunityUC := crm.NewOpportunityUseCase(txRunner, oppRepo, clientRepo)
	quoteUC := crm.NewQuoteUseCase(txRunner, quoteRepo, oppRepo)
	projectUC := projects.NewUseCase(projectRepo, riskRepo, clientRepo)
	interventionUC := fieldservice.NewInterventionUseCase(interventionRepo, hardwareRepo, projectRepo, log)
	inventoryUC := inventory.NewUseCase(hardwareRepo)
	invoiceUC := finance.NewInvoiceUseCase(invoiceRepo, clientRepo)
	ticketUC := portal.NewTicketUseCase(ticketRepo, clientRepo)
	boardUC := board.NewUseCase(taskRepo)
	dashboardUC := reports.NewDashboardUseCase(projectRepo, ticketRepo, invoiceRepo, oppRepo)
	overviewUC := reports.NewOverviewUseCase(oppRepo, projectRepo, invoiceRepo, hardwareRepo)
	projectReportUC := reports.NewProjectReportUseCase(projectRepo, oppRepo, quoteRepo, invoiceRepo, taskRepo, riskRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Operix API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:       companyUC,
		AuthUC:          authUC,
		ClientUC:        clientUC,
		OpportunityUC:   opportunityUC,
		QuoteUC:         quoteUC,
		ProjectUC:       projectUC,
		ProjectReportUC: projectReportUC,
		InterventionUC:  interventionUC,
		InventoryUC:     inventoryUC,
		InvoiceUC:       invoiceUC,
		TicketUC:        ticketUC,
		BoardUC:         boardUC,
		DashboardUC:     dashboardUC,
		OverviewUC:      overviewUC,
		JWTSecret:       cfg.JWT.Secret,
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
