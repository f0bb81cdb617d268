package repository

import (
	"time"

	"github.com/operix/plataforma-api/internal/domain/entity"
)

// RiskRepository define el puerto de persistencia para ProjectRisk.
type RiskRepository interface {
	Create(risk *entity.ProjectRisk) error
	GetByID(id string) (*entity.ProjectRisk, error)
	ListByProject(projectID string) ([]*entity.ProjectRisk, error)
	UpdateStatus(id, status string, updatedAt time.Time) error
}
