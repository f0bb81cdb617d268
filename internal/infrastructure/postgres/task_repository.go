package postgres

import (
	"context"
	"fmt"

	"github.com/operix/plataforma-api/internal/domain/entity"
	"github.com/operix/plataforma-api/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

// TaskRepo implementación de TaskRepository para tareas y sprints (usable con pool o tx).
type TaskRepo struct {
	q Querier
}

// NewTaskRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTaskRepository(q Querier) *TaskRepo {
	return &TaskRepo{q: q}
}

// Create persiste una nueva tarea.
func (r *TaskRepo) Create(task *entity.Task) error {
	query := `
		INSERT INTO tasks (id, company_id, project_id, sprint_id, title, type, priority, story_points, status, due_date, completed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		task.ID, task.CompanyID, task.ProjectID, task.SprintID, task.Title, task.Type,
		task.Priority, task.StoryPoints, task.Status, task.DueDate, task.CompletedAt,
		task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// ListAllByCompany escaneo completo de tareas de la empresa.
func (r *TaskRepo) ListAllByCompany(companyID string) ([]*entity.Task, error) {
	query := `
		SELECT id, company_id, project_id, sprint_id, title, type, priority, story_points, status, due_date, completed_at, created_at, updated_at
		FROM tasks WHERE company_id = $1`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Task
	for rows.Next() {
		var t entity.Task
		if err := rows.Scan(&t.ID, &t.CompanyID, &t.ProjectID, &t.SprintID, &t.Title, &t.Type,
			&t.Priority, &t.StoryPoints, &t.Status, &t.DueDate, &t.CompletedAt,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// CreateSprint persiste un nuevo sprint.
func (r *TaskRepo) CreateSprint(sprint *entity.Sprint) error {
	query := `
		INSERT INTO sprints (id, company_id, name, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		sprint.ID, sprint.CompanyID, sprint.Name, sprint.Status, sprint.CreatedAt, sprint.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sprint: %w", err)
	}
	return nil
}

// ListSprintsByCompany lista los sprints de la empresa.
func (r *TaskRepo) ListSprintsByCompany(companyID string) ([]*entity.Sprint, error) {
	query := `
		SELECT id, company_id, name, status, created_at, updated_at
		FROM sprints WHERE company_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list sprints: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sprint
	for rows.Next() {
		var s entity.Sprint
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.Name, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sprint: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
