package repository

import (
	"time"

	"github.com/operix/plataforma-api/internal/domain/entity"
)

// ProjectRepository define el puerto de persistencia para Project.
type ProjectRepository interface {
	// Create persiste el proyecto. Devuelve domain.ErrDuplicate si ya existe un
	// proyecto para la misma oportunidad (índice único parcial sobre opportunity_id).
	Create(project *entity.Project) error
	GetByID(id string) (*entity.Project, error)
	GetByOpportunityID(opportunityID string) (*entity.Project, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Project, error)
	// ListAllByCompany escaneo completo para el motor de reportes.
	ListAllByCompany(companyID string) ([]*entity.Project, error)
	// ListRecentByCompany devuelve los n proyectos más recientes (feed del dashboard).
	ListRecentByCompany(companyID string, n int) ([]*entity.Project, error)
	UpdateStatus(id, status string, updatedAt time.Time) error
	UpdateMilestones(id string, milestones []entity.Milestone, updatedAt time.Time) error
}
