package repository

import (
	"time"

	"github.com/operix/plataforma-api/internal/domain/entity"
)

// InterventionRepository define el puerto de persistencia para FieldIntervention.
type InterventionRepository interface {
	Create(iv *entity.FieldIntervention) error
	GetByID(id string) (*entity.FieldIntervention, error)
	ListByProject(projectID string) ([]*entity.FieldIntervention, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.FieldIntervention, error)
	// UpdateStatus estampa el nuevo estado y, si vienen, seriales y fotos de evidencia.
	// El patch de la intervención siempre procede, independiente del resultado
	// de la conciliación de inventario.
	UpdateStatus(id, status string, serials, photos []string, updatedAt time.Time) error
}
