package http

import (
	"github.com/gofiber/fiber/v2"

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
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC       *usecase.CompanyUseCase
	AuthUC          *auth.AuthUseCase
	ClientUC        *crm.ClientUseCase
	OpportunityUC   *crm.OpportunityUseCase
	QuoteUC         *crm.QuoteUseCase
	ProjectUC       *projects.UseCase
	ProjectReportUC *reports.ProjectReportUseCase
	InterventionUC  *fieldservice.InterventionUseCase
	InventoryUC     *inventory.UseCase
	InvoiceUC       *finance.InvoiceUseCase
	TicketUC        *portal.TicketUseCase
	BoardUC         *board.UseCase
	DashboardUC     *reports.DashboardUseCase
	OverviewUC      *reports.OverviewUseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (público por ahora; se puede proteger con AuthMiddleware(deps.JWTSecret))
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clients (protegido, CRM)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)

	// Opportunities (protegido, embudo de ventas)
	opportunities := protected.Group("/opportunities")
	opportunityHandler := NewOpportunityHandler(deps.OpportunityUC)
	quoteHandler := NewQuoteHandler(deps.QuoteUC)
	opportunities.Post("/", opportunityHandler.Create)
	opportunities.Get("/", opportunityHandler.List)
	opportunities.Get("/:id", opportunityHandler.GetByID)
	opportunities.Put("/:id", opportunityHandler.Update)
	opportunities.Get("/:id/quotes", quoteHandler.ListByOpportunity)

	// Quotes (protegido)
	quotes := protected.Group("/quotes")
	quotes.Post("/", quoteHandler.Create)
	quotes.Patch("/:id/status", quoteHandler.UpdateStatus)

	// Projects (protegido: proyectos, hitos, riesgos, reporte, intervenciones)
	projectGroup := protected.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC, deps.ProjectReportUC)
	interventionHandler := NewInterventionHandler(deps.InterventionUC)
	projectGroup.Post("/", projectHandler.Create)
	projectGroup.Get("/", projectHandler.List)
	projectGroup.Get("/:id", projectHandler.GetByID)
	projectGroup.Patch("/:id/status", projectHandler.UpdateStatus)
	projectGroup.Patch("/:id/milestones/:index", projectHandler.UpdateMilestone)
	projectGroup.Post("/:id/risks", projectHandler.CreateRisk)
	projectGroup.Get("/:id/risks", projectHandler.ListRisks)
	projectGroup.Get("/:id/report", projectHandler.Report)
	projectGroup.Get("/:id/interventions", interventionHandler.ListByProject)

	// Risks (protegido)
	risks := protected.Group("/risks")
	risks.Patch("/:id/status", projectHandler.UpdateRiskStatus)

	// Interventions (protegido, servicio de campo)
	interventions := protected.Group("/interventions")
	interventions.Post("/", interventionHandler.Create)
	interventions.Patch("/:id/status", interventionHandler.UpdateStatus)

	// Hardware e inventario (protegido)
	hardware := protected.Group("/hardware")
	hardwareHandler := NewHardwareHandler(deps.InventoryUC)
	hardware.Post("/", hardwareHandler.CreateItem)
	hardware.Get("/", hardwareHandler.ListItems)
	hardware.Get("/serials", hardwareHandler.ListSerials)
	hardware.Post("/:id/serials", hardwareHandler.CreateSerial)

	// Invoices (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)

	// Tickets (protegido, portal de clientes)
	tickets := protected.Group("/tickets")
	ticketHandler := NewTicketHandler(deps.TicketUC)
	tickets.Post("/", ticketHandler.Create)
	tickets.Get("/", ticketHandler.List)

	// Tablero ágil (protegido)
	taskHandler := NewTaskHandler(deps.BoardUC)
	tasks := protected.Group("/tasks")
	tasks.Post("/", taskHandler.CreateTask)
	tasks.Get("/", taskHandler.ListTasks)
	sprints := protected.Group("/sprints")
	sprints.Post("/", taskHandler.CreateSprint)
	sprints.Get("/", taskHandler.ListSprints)

	// Reports (protegido, agregaciones)
	reportGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.DashboardUC, deps.OverviewUC)
	reportGroup.Get("/dashboard", reportHandler.Dashboard)
	reportGroup.Get("/overview", reportHandler.Overview)
}
