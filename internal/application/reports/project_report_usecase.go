package reports

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/operix/plataforma-api/internal/application/dto"
	"github.com/operix/plataforma-api/internal/domain"
	"github.com/operix/plataforma-api/internal/domain/entity"
	"github.com/operix/plataforma-api/internal/domain/repository"
)

// ProjectReportUseCase genera el informe post-mortem de un proyecto: valor
// estimado, facturación, tasas de tareas y sprints, riesgos e hitos.
type ProjectReportUseCase struct {
	projectRepo repository.ProjectRepository
	oppRepo     repository.OpportunityRepository
	quoteRepo   repository.QuoteRepository
	invoiceRepo repository.InvoiceRepository
	taskRepo    repository.TaskRepository
	riskRepo    repository.RiskRepository
}

// NewProjectReportUseCase construye el caso de uso.
func NewProjectReportUseCase(
	projectRepo repository.ProjectRepository,
	oppRepo repository.OpportunityRepository,
	quoteRepo repository.QuoteRepository,
	invoiceRepo repository.InvoiceRepository,
	taskRepo repository.TaskRepository,
	riskRepo repository.RiskRepository,
) *ProjectReportUseCase {
	return &ProjectReportUseCase{
		projectRepo: projectRepo,
		oppRepo:     oppRepo,
		quoteRepo:   quoteRepo,
		invoiceRepo: invoiceRepo,
		taskRepo:    taskRepo,
		riskRepo:    riskRepo,
	}
}

// Generate arma el informe del proyecto. Riesgos e hitos van redondeados a
// entero; el resto de porcentajes a 2 decimales. ScheduleAdherence queda en
// nil cuando no hay tareas completadas con fecha (sin datos ≠ 0%).
func (uc *ProjectReportUseCase) Generate(companyID, projectID string) (*dto.ProjectReportDTO, error) {
	project, err := uc.projectRepo.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil || project.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	estimated, err := uc.estimatedValue(project)
	if err != nil {
		return nil, fmt.Errorf("reporte: valor estimado: %w", err)
	}

	invoices, err := uc.invoiceRepo.ListByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("reporte: facturas: %w", err)
	}
	invoiced := decimal.Zero
	paid := decimal.Zero
	for _, inv := range invoices {
		invoiced = invoiced.Add(inv.Amount)
		if inv.Status == entity.InvoiceStatusPaid {
			paid = paid.Add(inv.Amount)
		}
	}

	tasks, err := uc.allTasksAcrossSystem(companyID)
	if err != nil {
		return nil, fmt.Errorf("reporte: tareas: %w", err)
	}
	sprints, err := uc.taskRepo.ListSprintsByCompany(companyID)
	if err != nil {
		return nil, fmt.Errorf("reporte: sprints: %w", err)
	}
	risks, err := uc.riskRepo.ListByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("reporte: riesgos: %w", err)
	}

	report := &dto.ProjectReportDTO{
		ProjectID:      project.ID,
		Title:          project.Title,
		Status:         project.Status,
		EstimatedValue: estimated,
		InvoicedTotal:  invoiced,
		PaidTotal:      paid,
	}
	fillTaskRates(report, tasks)
	report.SprintVelocity = sprintVelocity(sprints, tasks)
	report.ScheduleAdherence = scheduleAdherence(tasks)
	fillRiskAndMilestoneRates(report, risks, project.Milestones)
	return report, nil
}

// estimatedValue resuelve el valor estimado del proyecto en cadena: la
// estimación de la oportunidad de origen si es positiva, si no el total de su
// cotización aceptada, si no cero.
func (uc *ProjectReportUseCase) estimatedValue(project *entity.Project) (decimal.Decimal, error) {
	if project.OpportunityID == "" {
		return decimal.Zero, nil
	}
	opp, err := uc.oppRepo.GetByID(project.OpportunityID)
	if err != nil {
		return decimal.Zero, err
	}
	if opp != nil && opp.EstimatedValue.GreaterThan(decimal.Zero) {
		return opp.EstimatedValue, nil
	}
	quotes, err := uc.quoteRepo.ListByOpportunity(project.OpportunityID)
	if err != nil {
		return decimal.Zero, err
	}
	for _, q := range quotes {
		if q.Status == entity.QuoteStatusAceptado {
			return q.Total, nil
		}
	}
	return decimal.Zero, nil
}

// allTasksAcrossSystem devuelve TODAS las tareas de la empresa, no solo las
// del proyecto. Las tasas de tareas del informe se calculan sobre el sistema
// completo; para acotarlas al proyecto basta con sustituir esta función sin
// tocar el ensamblado del informe.
func (uc *ProjectReportUseCase) allTasksAcrossSystem(companyID string) ([]*entity.Task, error) {
	return uc.taskRepo.ListAllByCompany(companyID)
}

func fillTaskRates(report *dto.ProjectReportDTO, tasks []*entity.Task) {
	done := 0
	bugs := 0
	pointsDone := 0
	pointsTotal := 0
	for _, t := range tasks {
		pointsTotal += t.StoryPoints
		if t.Status == entity.TaskStatusDone {
			done++
			pointsDone += t.StoryPoints
		}
		if t.Type == entity.TaskTypeBug {
			bugs++
		}
	}
	report.TaskCompletionRate = percent2(done, len(tasks))
	report.BugRate = percent2(bugs, len(tasks))
	report.StoryPointsDone = pointsDone
	report.StoryPointsTotal = pointsTotal
}

// sprintVelocity promedia los puntos de historia completados por sprint
// cerrado. Sin sprints cerrados la velocidad es 0.
func sprintVelocity(sprints []*entity.Sprint, tasks []*entity.Task) decimal.Decimal {
	pointsBySprint := make(map[string]int)
	for _, t := range tasks {
		if t.SprintID != "" && t.Status == entity.TaskStatusDone {
			pointsBySprint[t.SprintID] += t.StoryPoints
		}
	}
	closed := 0
	totalPoints := 0
	for _, s := range sprints {
		if s.Status == entity.SprintStatusClosed {
			closed++
			totalPoints += pointsBySprint[s.ID]
		}
	}
	if closed == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(totalPoints)).
		Div(decimal.NewFromInt(int64(closed))).Round(2)
}

// scheduleAdherence devuelve el porcentaje de tareas completadas con fecha
// límite que terminaron a tiempo (CompletedAt ≤ DueDate), o nil si ninguna
// tarea completada tiene ambas fechas: el caller debe poder distinguir
// "sin datos" de "0% a tiempo".
func scheduleAdherence(tasks []*entity.Task) *decimal.Decimal {
	dated := 0
	onTime := 0
	for _, t := range tasks {
		if t.Status != entity.TaskStatusDone || t.DueDate == nil || t.CompletedAt == nil {
			continue
		}
		dated++
		if !t.CompletedAt.After(*t.DueDate) {
			onTime++
		}
	}
	if dated == 0 {
		return nil
	}
	p := percent2(onTime, dated)
	return &p
}

func fillRiskAndMilestoneRates(report *dto.ProjectReportDTO, risks []*entity.ProjectRisk, milestones []entity.Milestone) {
	resolved := 0
	for _, r := range risks {
		if r.Status == entity.RiskStatusResolved {
			resolved++
		}
	}
	report.RiskResolutionRate = percentInt(resolved, len(risks))

	completed := 0
	paid := 0
	for _, m := range milestones {
		if m.CompletedAt != nil {
			completed++
		}
		if m.IsPaid {
			paid++
		}
	}
	report.MilestoneCompletionRate = percentInt(completed, len(milestones))
	report.MilestonePaymentRate = percentInt(paid, len(milestones))
}
