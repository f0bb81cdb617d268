package crm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/operix/plataforma-api/internal/application/dto"
	"github.com/operix/plataforma-api/internal/domain"
	"github.com/operix/plataforma-api/internal/domain/entity"
	"github.com/operix/plataforma-api/internal/domain/repository"
)

var validOpportunityStatus = map[string]bool{
	entity.OpportunityStatusLead:         true,
	entity.OpportunityStatusPresentation: true,
	entity.OpportunityStatusNegotiation:  true,
	entity.OpportunityStatusWon:          true,
	entity.OpportunityStatusLost:         true,
}

var validServiceUnit = map[string]bool{
	entity.ServiceUnitDigital:   true,
	entity.ServiceUnitSolutions: true,
	entity.ServiceUnitInfra:     true,
}

// OpportunityUseCase casos de uso del embudo de ventas, incluida la cascada
// oportunidad→proyecto.
type OpportunityUseCase struct {
	txRunner   TxRunner
	oppRepo    repository.OpportunityRepository
	clientRepo repository.ClientRepository
}

// NewOpportunityUseCase construye el caso de uso.
func NewOpportunityUseCase(txRunner TxRunner, oppRepo repository.OpportunityRepository, clientRepo repository.ClientRepository) *OpportunityUseCase {
	return &OpportunityUseCase{txRunner: txRunner, oppRepo: oppRepo, clientRepo: clientRepo}
}

// Create crea una oportunidad en estado "lead".
func (uc *OpportunityUseCase) Create(companyID string, in dto.CreateOpportunityRequest) (*dto.OpportunityResponse, error) {
	if in.ClientID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ServiceUnit != "" && !validServiceUnit[in.ServiceUnit] {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil || client.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	opp := &entity.Opportunity{
		ID:             uuid.New().String(),
		CompanyID:      companyID,
		ClientID:       in.ClientID,
		AssignedTo:     in.AssignedTo,
		ServiceUnit:    in.ServiceUnit,
		PackageID:      in.PackageID,
		EstimatedValue: in.EstimatedValue,
		Status:         entity.OpportunityStatusLead,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.oppRepo.Create(opp); err != nil {
		return nil, err
	}
	return opportunityToResponse(opp), nil
}

// GetByID obtiene una oportunidad, validando pertenencia a la empresa.
func (uc *OpportunityUseCase) GetByID(companyID, id string) (*dto.OpportunityResponse, error) {
	opp, err := uc.oppRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if opp == nil || opp.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return opportunityToResponse(opp), nil
}

// List lista oportunidades de la empresa con paginación.
func (uc *OpportunityUseCase) List(companyID string, limit, offset int) (*dto.OpportunityListResponse, error) {
	list, err := uc.oppRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OpportunityResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *opportunityToResponse(o))
	}
	return &dto.OpportunityListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update aplica el patch sobre la oportunidad y dispara la cascada
// oportunidad→proyecto cuando el patch trae status "won" y el estado
// almacenado aún no era "won" (los guardados repetidos no re-disparan).
//
// El patch y la cascada corren en la misma transacción. La unicidad
// proyecto-por-oportunidad la garantiza el índice único parcial sobre
// projects.opportunity_id: dos "mark won" concurrentes pueden pasar ambos el
// pre-chequeo, pero solo uno inserta; el otro recibe
// CascadeSkippedAlreadyExists.
func (uc *OpportunityUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateOpportunityRequest) (*dto.UpdateOpportunityResponse, error) {
	opp, err := uc.oppRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if opp == nil || opp.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	prevStatus := opp.Status
	if in.Status != nil {
		if !validOpportunityStatus[*in.Status] {
			return nil, domain.ErrInvalidInput
		}
		opp.Status = *in.Status
	}
	if in.AssignedTo != nil {
		opp.AssignedTo = *in.AssignedTo
	}
	if in.ServiceUnit != nil {
		if !validServiceUnit[*in.ServiceUnit] {
			return nil, domain.ErrInvalidInput
		}
		opp.ServiceUnit = *in.ServiceUnit
	}
	if in.PackageID != nil {
		opp.PackageID = *in.PackageID
	}
	if in.EstimatedValue != nil {
		opp.EstimatedValue = *in.EstimatedValue
	}
	opp.UpdatedAt = time.Now()

	cascade := domain.CascadeNotTriggered
	projectID := ""

	shouldCascade := in.Status != nil &&
		*in.Status == entity.OpportunityStatusWon &&
		prevStatus != entity.OpportunityStatusWon

	err = uc.txRunner.RunOpportunity(ctx, func(
		oppRepo repository.OpportunityRepository,
		projectRepo repository.ProjectRepository,
		clientRepo repository.ClientRepository,
	) error {
		if err := oppRepo.Update(opp); err != nil {
			return fmt.Errorf("actualizar oportunidad: %w", err)
		}
		if !shouldCascade {
			return nil
		}
		var cascadeErr error
		cascade, projectID, cascadeErr = spawnProject(projectRepo, clientRepo, opp)
		return cascadeErr
	})
	if err != nil {
		return nil, err
	}

	return &dto.UpdateOpportunityResponse{
		Opportunity: *opportunityToResponse(opp),
		Cascade:     string(cascade),
		ProjectID:   projectID,
	}, nil
}

// spawnProject crea el proyecto derivado de una oportunidad ganada: título
// sintetizado de cliente + paquete ("Nuevo Cliente" si el cliente no resuelve)
// y dos hitos por defecto del 50% sin pagar.
func spawnProject(
	projectRepo repository.ProjectRepository,
	clientRepo repository.ClientRepository,
	opp *entity.Opportunity,
) (domain.CascadeResult, string, error) {
	existing, err := projectRepo.GetByOpportunityID(opp.ID)
	if err != nil {
		return domain.CascadeNotTriggered, "", err
	}
	if existing != nil {
		return domain.CascadeSkippedAlreadyExists, existing.ID, nil
	}

	clientName := "Nuevo Cliente"
	if client, err := clientRepo.GetByID(opp.ClientID); err == nil && client != nil {
		clientName = client.CompanyName
	}
	title := clientName
	if opp.PackageID != "" {
		title = fmt.Sprintf("%s - %s", clientName, opp.PackageID)
	}

	now := time.Now()
	project := &entity.Project{
		ID:            uuid.New().String(),
		CompanyID:     opp.CompanyID,
		ClientID:      opp.ClientID,
		OpportunityID: opp.ID,
		Title:         title,
		Status:        entity.ProjectStatusPlanning,
		Milestones:    entity.DefaultMilestones(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := projectRepo.Create(project); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			// Carrera entre dos "mark won": el índice único decidió por nosotros.
			return domain.CascadeSkippedAlreadyExists, "", nil
		}
		return domain.CascadeNotTriggered, "", err
	}
	return domain.CascadeApplied, project.ID, nil
}

func opportunityToResponse(o *entity.Opportunity) *dto.OpportunityResponse {
	if o == nil {
		return nil
	}
	value := o.EstimatedValue
	if value.IsZero() {
		value = decimal.Zero
	}
	return &dto.OpportunityResponse{
		ID:             o.ID,
		ClientID:       o.ClientID,
		AssignedTo:     o.AssignedTo,
		ServiceUnit:    o.ServiceUnit,
		PackageID:      o.PackageID,
		EstimatedValue: value,
		Status:         o.Status,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}
