// Package board maneja el tablero ágil (tareas y sprints). El reporte de
// proyecto consume estas entidades vía escaneo completo por empresa.
package board

import (
	"time"

	"github.com/google/uuid"

	"github.com/operix/plataforma-api/internal/application/dto"
	"github.com/operix/plataforma-api/internal/domain"
	"github.com/operix/plataforma-api/internal/domain/entity"
	"github.com/operix/plataforma-api/internal/domain/repository"
)

var validTaskType = map[string]bool{
	entity.TaskTypeFeature: true,
	entity.TaskTypeBug:     true,
	entity.TaskTypeChore:   true,
}

// UseCase operaciones del tablero ágil.
type UseCase struct {
	taskRepo repository.TaskRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(taskRepo repository.TaskRepository) *UseCase {
	return &UseCase{taskRepo: taskRepo}
}

// CreateTask crea una tarea en estado "todo".
func (uc *UseCase) CreateTask(companyID string, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	taskType := in.Type
	if taskType == "" {
		taskType = entity.TaskTypeFeature
	}
	if !validTaskType[taskType] {
		return nil, domain.ErrInvalidInput
	}
	if in.StoryPoints < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	task := &entity.Task{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		ProjectID:   in.ProjectID,
		SprintID:    in.SprintID,
		Title:       in.Title,
		Type:        taskType,
		Priority:    in.Priority,
		StoryPoints: in.StoryPoints,
		Status:      entity.TaskStatusTodo,
		DueDate:     in.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.taskRepo.Create(task); err != nil {
		return nil, err
	}
	return taskToResponse(task), nil
}

// ListTasks lista todas las tareas de la empresa.
func (uc *UseCase) ListTasks(companyID string) ([]dto.TaskResponse, error) {
	list, err := uc.taskRepo.ListAllByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TaskResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *taskToResponse(t))
	}
	return items, nil
}

// CreateSprint crea un sprint activo.
func (uc *UseCase) CreateSprint(companyID string, in dto.CreateSprintRequest) (*dto.SprintResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	sprint := &entity.Sprint{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Status:    entity.SprintStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.taskRepo.CreateSprint(sprint); err != nil {
		return nil, err
	}
	return &dto.SprintResponse{ID: sprint.ID, Name: sprint.Name, Status: sprint.Status, CreatedAt: sprint.CreatedAt}, nil
}

// ListSprints lista los sprints de la empresa.
func (uc *UseCase) ListSprints(companyID string) ([]dto.SprintResponse, error) {
	list, err := uc.taskRepo.ListSprintsByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SprintResponse, 0, len(list))
	for _, s := range list {
		items = append(items, dto.SprintResponse{ID: s.ID, Name: s.Name, Status: s.Status, CreatedAt: s.CreatedAt})
	}
	return items, nil
}

func taskToResponse(t *entity.Task) *dto.TaskResponse {
	if t == nil {
		return nil
	}
	return &dto.TaskResponse{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		SprintID:    t.SprintID,
		Title:       t.Title,
		Type:        t.Type,
		Priority:    t.Priority,
		StoryPoints: t.StoryPoints,
		Status:      t.Status,
		DueDate:     t.DueDate,
		CompletedAt: t.CompletedAt,
		CreatedAt:   t.CreatedAt,
	}
}
