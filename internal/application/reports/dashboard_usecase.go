package reports

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/operix/plataforma-api/internal/application/dto"
	"github.com/operix/plataforma-api/internal/domain/entity"
	"github.com/operix/plataforma-api/internal/domain/repository"
)

const recentActivitySize = 5 // entradas del feed del dashboard

// Colores de badge por tipo de actividad (los consume el front tal cual).
const (
	colorTicket  = "orange"
	colorFactura = "green"
	colorProyecto = "blue"
	colorLead    = "purple"
)

// DashboardUseCase calcula las métricas del dashboard principal.
type DashboardUseCase struct {
	projectRepo repository.ProjectRepository
	ticketRepo  repository.TicketRepository
	invoiceRepo repository.InvoiceRepository
	oppRepo     repository.OpportunityRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	projectRepo repository.ProjectRepository,
	ticketRepo repository.TicketRepository,
	invoiceRepo repository.InvoiceRepository,
	oppRepo repository.OpportunityRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		projectRepo: projectRepo,
		ticketRepo:  ticketRepo,
		invoiceRepo: invoiceRepo,
		oppRepo:     oppRepo,
	}
}

// GetMetrics construye el DashboardMetricsDTO de la empresa: contadores de
// proyectos activos y tickets abiertos, monto pendiente de facturación y el
// feed unificado de actividad reciente.
//
// Cuatro escaneos en paralelo (proyectos, tickets, facturas, leads); la
// reducción es en memoria sobre el snapshot de cada colección.
func (uc *DashboardUseCase) GetMetrics(companyID string) (*dto.DashboardMetricsDTO, error) {
	type projectsResult struct {
		all    []*entity.Project
		recent []*entity.Project
		err    error
	}
	type ticketsResult struct {
		all    []*entity.Ticket
		recent []*entity.Ticket
		err    error
	}
	type invoicesResult struct {
		all    []*entity.Invoice
		recent []*entity.Invoice
		err    error
	}
	type leadsResult struct {
		recent []*entity.Opportunity
		err    error
	}

	projectsCh := make(chan projectsResult, 1)
	ticketsCh := make(chan ticketsResult, 1)
	invoicesCh := make(chan invoicesResult, 1)
	leadsCh := make(chan leadsResult, 1)

	go func() {
		all, err := uc.projectRepo.ListAllByCompany(companyID)
		if err != nil {
			projectsCh <- projectsResult{err: err}
			return
		}
		recent, err := uc.projectRepo.ListRecentByCompany(companyID, recentActivitySize)
		projectsCh <- projectsResult{all: all, recent: recent, err: err}
	}()
	go func() {
		all, err := uc.ticketRepo.ListAllByCompany(companyID)
		if err != nil {
			ticketsCh <- ticketsResult{err: err}
			return
		}
		recent, err := uc.ticketRepo.ListRecentByCompany(companyID, recentActivitySize)
		ticketsCh <- ticketsResult{all: all, recent: recent, err: err}
	}()
	go func() {
		all, err := uc.invoiceRepo.ListAllByCompany(companyID)
		if err != nil {
			invoicesCh <- invoicesResult{err: err}
			return
		}
		recent, err := uc.invoiceRepo.ListRecentByCompany(companyID, recentActivitySize)
		invoicesCh <- invoicesResult{all: all, recent: recent, err: err}
	}()
	go func() {
		recent, err := uc.oppRepo.ListRecentLeads(companyID, recentActivitySize)
		leadsCh <- leadsResult{recent: recent, err: err}
	}()

	projects := <-projectsCh
	tickets := <-ticketsCh
	invoices := <-invoicesCh
	leads := <-leadsCh

	if projects.err != nil {
		return nil, fmt.Errorf("dashboard: proyectos: %w", projects.err)
	}
	if tickets.err != nil {
		return nil, fmt.Errorf("dashboard: tickets: %w", tickets.err)
	}
	if invoices.err != nil {
		return nil, fmt.Errorf("dashboard: facturas: %w", invoices.err)
	}
	if leads.err != nil {
		return nil, fmt.Errorf("dashboard: leads: %w", leads.err)
	}

	activeProjects := 0
	for _, p := range projects.all {
		if p.Status != entity.ProjectStatusCompleted {
			activeProjects++
		}
	}

	openTickets := 0
	for _, t := range tickets.all {
		if t.Status == entity.TicketStatusAbierto || t.Status == entity.TicketStatusEnProgreso {
			openTickets++
		}
	}

	pendingAmount := decimal.Zero
	pendingCount := 0
	for _, inv := range invoices.all {
		if inv.Status == entity.InvoiceStatusPending {
			pendingAmount = pendingAmount.Add(inv.Amount)
			pendingCount++
		}
	}

	return &dto.DashboardMetricsDTO{
		ActiveProjects:        activeProjects,
		OpenTickets:           openTickets,
		PendingInvoicesAmount: pendingAmount,
		PendingInvoicesCount:  pendingCount,
		RecentActivity:        mergeActivity(tickets.recent, invoices.recent, projects.recent, leads.recent),
	}, nil
}

// mergeActivity fusiona los recientes de cada colección en orden fijo
// ticket→factura→proyecto→lead y ordena de forma estable descendente por
// timestamp: con timestamps iguales se conserva ese orden de fusión.
// Devuelve como máximo recentActivitySize entradas.
func mergeActivity(
	tickets []*entity.Ticket,
	invoices []*entity.Invoice,
	projects []*entity.Project,
	leads []*entity.Opportunity,
) []dto.ActivityItemDTO {
	feed := make([]dto.ActivityItemDTO, 0,
		len(tickets)+len(invoices)+len(projects)+len(leads))

	for _, t := range tickets {
		feed = append(feed, dto.ActivityItemDTO{
			Type: "ticket", Color: colorTicket, Title: t.Subject, Timestamp: t.CreatedAt,
		})
	}
	for _, inv := range invoices {
		feed = append(feed, dto.ActivityItemDTO{
			Type: "factura", Color: colorFactura,
			Title:     fmt.Sprintf("Factura por %s", inv.Amount.StringFixed(2)),
			Timestamp: inv.CreatedAt,
		})
	}
	for _, p := range projects {
		feed = append(feed, dto.ActivityItemDTO{
			Type: "proyecto", Color: colorProyecto, Title: p.Title, Timestamp: p.CreatedAt,
		})
	}
	for _, o := range leads {
		title := "Nueva oportunidad"
		if o.PackageID != "" {
			title = fmt.Sprintf("Nueva oportunidad: %s", o.PackageID)
		}
		feed = append(feed, dto.ActivityItemDTO{
			Type: "lead", Color: colorLead, Title: title, Timestamp: o.CreatedAt,
		})
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Timestamp.After(feed[j].Timestamp)
	})
	if len(feed) > recentActivitySize {
		feed = feed[:recentActivitySize]
	}
	return feed
}
