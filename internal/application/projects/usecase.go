// Package projects contiene los casos de uso de proyectos de entrega:
// ciclo de vida, hitos de pago embebidos y riesgos.
package projects

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/operix/plataforma-api/internal/application/dto"
	"github.com/operix/plataforma-api/internal/domain"
	"github.com/operix/plataforma-api/internal/domain/entity"
	"github.com/operix/plataforma-api/internal/domain/repository"
)

// UseCase casos de uso de proyectos y riesgos.
type UseCase struct {
	projectRepo repository.ProjectRepository
	riskRepo    repository.RiskRepository
	clientRepo  repository.ClientRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(projectRepo repository.ProjectRepository, riskRepo repository.RiskRepository, clientRepo repository.ClientRepository) *UseCase {
	return &UseCase{projectRepo: projectRepo, riskRepo: riskRepo, clientRepo: clientRepo}
}

// Create crea un proyecto directamente (sin oportunidad de origen).
// Si no vienen hitos se aplican los dos del 50% por defecto.
func (uc *UseCase) Create(companyID string, in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if in.Title == "" || in.ClientID == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil || client.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	milestones := milestonesFromDTO(in.Milestones)
	if len(milestones) == 0 {
		milestones = entity.DefaultMilestones()
	}
	now := time.Now()
	project := &entity.Project{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		ClientID:   in.ClientID,
		Title:      in.Title,
		Status:     entity.ProjectStatusPlanning,
		Milestones: milestones,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.projectRepo.Create(project); err != nil {
		return nil, err
	}
	return ProjectToResponse(project), nil
}

// GetByID obtiene un proyecto, validando pertenencia a la empresa.
func (uc *UseCase) GetByID(companyID, id string) (*dto.ProjectResponse, error) {
	project, err := uc.getOwned(companyID, id)
	if err != nil {
		return nil, err
	}
	return ProjectToResponse(project), nil
}

// List lista proyectos de la empresa con paginación.
func (uc *UseCase) List(companyID string, limit, offset int) (*dto.ProjectListResponse, error) {
	list, err := uc.projectRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProjectResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ProjectToResponse(p))
	}
	return &dto.ProjectListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateStatus transiciona el proyecto validando el ciclo
// planning→in_progress→review→completed.
func (uc *UseCase) UpdateStatus(companyID, id, status string) (*dto.ProjectResponse, error) {
	project, err := uc.getOwned(companyID, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanProjectTransition(project.Status, status) {
		return nil, domain.ErrInvalidTransition
	}
	now := time.Now()
	if err := uc.projectRepo.UpdateStatus(id, status, now); err != nil {
		return nil, err
	}
	project.Status = status
	project.UpdatedAt = now
	return ProjectToResponse(project), nil
}

// UpdateMilestone muta un hito embebido por índice: marcarlo pagado o
// completado (estampa CompletedAt) de forma independiente del resto.
func (uc *UseCase) UpdateMilestone(companyID, id string, index int, in dto.UpdateMilestoneRequest) (*dto.ProjectResponse, error) {
	project, err := uc.getOwned(companyID, id)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(project.Milestones) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	m := &project.Milestones[index]
	if in.IsPaid != nil {
		m.IsPaid = *in.IsPaid
	}
	if in.Completed != nil {
		if *in.Completed {
			ts := now
			m.CompletedAt = &ts
		} else {
			m.CompletedAt = nil
		}
	}
	if err := uc.projectRepo.UpdateMilestones(id, project.Milestones, now); err != nil {
		return nil, err
	}
	project.UpdatedAt = now
	return ProjectToResponse(project), nil
}

// CreateRisk registra un riesgo sobre el proyecto en estado "identified".
func (uc *UseCase) CreateRisk(companyID, projectID string, in dto.CreateRiskRequest) (*dto.RiskResponse, error) {
	project, err := uc.getOwned(companyID, projectID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	risk := &entity.ProjectRisk{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		ProjectID:   project.ID,
		OwnerID:     in.OwnerID,
		Description: in.Description,
		Probability: in.Probability,
		Impact:      in.Impact,
		Status:      entity.RiskStatusIdentified,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.riskRepo.Create(risk); err != nil {
		return nil, err
	}
	return riskToResponse(risk), nil
}

// ListRisks lista los riesgos de un proyecto.
func (uc *UseCase) ListRisks(companyID, projectID string) ([]dto.RiskResponse, error) {
	if _, err := uc.getOwned(companyID, projectID); err != nil {
		return nil, err
	}
	list, err := uc.riskRepo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RiskResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *riskToResponse(r))
	}
	return items, nil
}

// UpdateRiskStatus transiciona un riesgo manualmente; UpdatedAt se estampa
// en cada actualización.
func (uc *UseCase) UpdateRiskStatus(companyID, riskID, status string) (*dto.RiskResponse, error) {
	risk, err := uc.riskRepo.GetByID(riskID)
	if err != nil {
		return nil, err
	}
	if risk == nil || risk.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if !domain.CanRiskTransition(risk.Status, status) {
		return nil, domain.ErrInvalidTransition
	}
	now := time.Now()
	if err := uc.riskRepo.UpdateStatus(riskID, status, now); err != nil {
		return nil, err
	}
	risk.Status = status
	risk.UpdatedAt = now
	return riskToResponse(risk), nil
}

func (uc *UseCase) getOwned(companyID, id string) (*entity.Project, error) {
	project, err := uc.projectRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil || project.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return project, nil
}

func milestonesFromDTO(in []dto.MilestoneDTO) []entity.Milestone {
	out := make([]entity.Milestone, 0, len(in))
	for _, m := range in {
		out = append(out, entity.Milestone{
			Name:        m.Name,
			Percentage:  m.Percentage,
			IsPaid:      m.IsPaid,
			CompletedAt: m.CompletedAt,
		})
	}
	return out
}

// ProjectToResponse convierte la entidad a su representación HTTP.
// Exportado porque el reporte de proyecto y la cascada CRM lo reutilizan.
func ProjectToResponse(p *entity.Project) *dto.ProjectResponse {
	if p == nil {
		return nil
	}
	milestones := make([]dto.MilestoneDTO, 0, len(p.Milestones))
	for _, m := range p.Milestones {
		pct := m.Percentage
		if pct.IsZero() {
			pct = decimal.Zero
		}
		milestones = append(milestones, dto.MilestoneDTO{
			Name:        m.Name,
			Percentage:  pct,
			IsPaid:      m.IsPaid,
			CompletedAt: m.CompletedAt,
		})
	}
	return &dto.ProjectResponse{
		ID:            p.ID,
		ClientID:      p.ClientID,
		OpportunityID: p.OpportunityID,
		Title:         p.Title,
		Status:        p.Status,
		Milestones:    milestones,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func riskToResponse(r *entity.ProjectRisk) *dto.RiskResponse {
	if r == nil {
		return nil
	}
	return &dto.RiskResponse{
		ID:          r.ID,
		ProjectID:   r.ProjectID,
		OwnerID:     r.OwnerID,
		Description: r.Description,
		Probability: r.Probability,
		Impact:      r.Impact,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
