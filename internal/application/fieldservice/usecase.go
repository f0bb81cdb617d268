// Package fieldservice contiene los casos de uso de intervenciones técnicas en
// sitio y la conciliación de inventario por serial al completarlas.
package fieldservice

import (
	"time"

	"github.com/google/uuid"

	"github.com/operix/plataforma-api/internal/application/dto"
	"github.com/operix/plataforma-api/internal/domain"
	"github.com/operix/plataforma-api/internal/domain/entity"
	"github.com/operix/plataforma-api/internal/domain/repository"
	"github.com/operix/plataforma-api/pkg/logger"
)

// InterventionUseCase casos de uso de intervenciones de campo.
//
// La conciliación de seriales es deliberadamente best-effort, no transaccional:
// el patch de la intervención se aplica primero y nunca se revierte por el
// desenlace del inventario. Cada serial se resuelve de forma independiente y
// los que no aplican (no encontrados, ya instalados) se reportan como skip.
type InterventionUseCase struct {
	ivRepo      repository.InterventionRepository
	hwRepo      repository.HardwareRepository
	projectRepo repository.ProjectRepository
	log         *logger.Logger
}

// NewInterventionUseCase construye el caso de uso.
func NewInterventionUseCase(
	ivRepo repository.InterventionRepository,
	hwRepo repository.HardwareRepository,
	projectRepo repository.ProjectRepository,
	log *logger.Logger,
) *InterventionUseCase {
	return &InterventionUseCase{ivRepo: ivRepo, hwRepo: hwRepo, projectRepo: projectRepo, log: log}
}

// Create agenda una intervención sobre un proyecto existente.
func (uc *InterventionUseCase) Create(companyID string, in dto.CreateInterventionRequest) (*dto.InterventionResponse, error) {
	if in.ProjectID == "" || in.TechnicianID == "" {
		return nil, domain.ErrInvalidInput
	}
	project, err := uc.projectRepo.GetByID(in.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil || project.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	iv := &entity.FieldIntervention{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		ProjectID:    in.ProjectID,
		TechnicianID: in.TechnicianID,
		Type:         in.Type,
		SiteLocation: in.SiteLocation,
		Status:       entity.InterventionStatusScheduled,
		ScheduledAt:  in.ScheduledAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.ivRepo.Create(iv); err != nil {
		return nil, err
	}
	return interventionToResponse(iv), nil
}

// ListByProject lista las intervenciones de un proyecto.
func (uc *InterventionUseCase) ListByProject(companyID, projectID string) ([]dto.InterventionResponse, error) {
	project, err := uc.projectRepo.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil || project.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	list, err := uc.ivRepo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InterventionResponse, 0, len(list))
	for _, iv := range list {
		items = append(items, *interventionToResponse(iv))
	}
	return items, nil
}

// UpdateStatus transiciona la intervención y, al completarla con seriales,
// concilia el inventario: cada serial in_stock pasa a installed con el
// proyecto de la intervención estampado. Seriales no encontrados o ya
// instalados se saltan sin error; el patch de la intervención ya quedó
// aplicado pase lo que pase con los seriales.
func (uc *InterventionUseCase) UpdateStatus(companyID, id string, in dto.UpdateInterventionStatusRequest) (*dto.UpdateInterventionStatusResponse, error) {
	iv, err := uc.ivRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if iv == nil || iv.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if !domain.CanInterventionTransition(iv.Status, in.Status) {
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now()
	if err := uc.ivRepo.UpdateStatus(id, in.Status, in.HardwareSerials, in.EvidencePhotosURL, now); err != nil {
		return nil, err
	}
	iv.Status = in.Status
	if in.HardwareSerials != nil {
		iv.HardwareSerials = in.HardwareSerials
	}
	if in.EvidencePhotosURL != nil {
		iv.EvidencePhotosURL = in.EvidencePhotosURL
	}
	iv.UpdatedAt = now

	var serials []dto.SerialReconciliationDTO
	if in.Status == entity.InterventionStatusCompleted && len(in.HardwareSerials) > 0 {
		serials = uc.reconcileSerials(iv, in.HardwareSerials, now)
	}

	return &dto.UpdateInterventionStatusResponse{
		Intervention: *interventionToResponse(iv),
		Serials:      serials,
	}, nil
}

// reconcileSerials resuelve cada serial por coincidencia exacta y solo
// transiciona unidades in_stock (la guarda de estado vive en el UPDATE
// condicional del repositorio). Errores de infraestructura por serial se
// degradan a skip: la máquina de estados in_stock→installed nunca bloquea
// ni revierte la intervención.
func (uc *InterventionUseCase) reconcileSerials(iv *entity.FieldIntervention, requested []string, now time.Time) []dto.SerialReconciliationDTO {
	results := make([]dto.SerialReconciliationDTO, 0, len(requested))
	for _, serial := range requested {
		outcome := uc.reconcileOne(iv, serial, now)
		results = append(results, dto.SerialReconciliationDTO{Serial: serial, Result: string(outcome)})
	}
	return results
}

func (uc *InterventionUseCase) reconcileOne(iv *entity.FieldIntervention, serial string, now time.Time) domain.CascadeResult {
	sn, err := uc.hwRepo.GetBySerial(iv.CompanyID, serial)
	if err != nil {
		uc.log.Warn().Err(err).Str("serial", serial).Msg("conciliación: fallo al resolver serial")
		return domain.CascadeSkippedNotFound
	}
	if sn == nil {
		return domain.CascadeSkippedNotFound
	}
	if sn.Status != entity.SerialStatusInStock {
		return domain.CascadeSkippedAlreadyExists
	}
	applied, err := uc.hwRepo.Install(sn.ID, iv.ProjectID, now)
	if err != nil {
		uc.log.Warn().Err(err).Str("serial", serial).Msg("conciliación: fallo al instalar serial")
		return domain.CascadeSkippedNotFound
	}
	if !applied {
		// Otro proceso lo instaló entre la lectura y el UPDATE condicional.
		return domain.CascadeSkippedAlreadyExists
	}
	return domain.CascadeApplied
}

func interventionToResponse(iv *entity.FieldIntervention) *dto.InterventionResponse {
	if iv == nil {
		return nil
	}
	return &dto.InterventionResponse{
		ID:                iv.ID,
		ProjectID:         iv.ProjectID,
		TechnicianID:      iv.TechnicianID,
		Type:              iv.Type,
		SiteLocation:      iv.SiteLocation,
		Status:            iv.Status,
		HardwareSerials:   iv.HardwareSerials,
		EvidencePhotosURL: iv.EvidencePhotosURL,
		ScheduledAt:       iv.ScheduledAt,
		CreatedAt:         iv.CreatedAt,
		UpdatedAt:         iv.UpdatedAt,
	}
}
