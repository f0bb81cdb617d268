package repository

import "github.com/operix/plataforma-api/internal/domain/entity"

// TaskRepository define el puerto de persistencia para Task y Sprint (tablero ágil).
type TaskRepository interface {
	Create(task *entity.Task) error
	// ListAllByCompany escaneo completo de tareas de la empresa; el reporte de
	// proyecto lo consume tal cual (sin filtrar por proyecto).
	ListAllByCompany(companyID string) ([]*entity.Task, error)

	CreateSprint(sprint *entity.Sprint) error
	ListSprintsByCompany(companyID string) ([]*entity.Sprint, error)
}
