package entity

import "time"

// Estados y tipos de tareas del tablero ágil.
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"

	TaskTypeFeature = "feature"
	TaskTypeBug     = "bug"
	TaskTypeChore   = "chore"
)

// Estados de un sprint.
const (
	SprintStatusActive = "active"
	SprintStatusClosed = "closed"
)

// Task tarea del tablero kanban/scrum. DueDate y CompletedAt son opcionales:
// solo las tareas completadas con ambas fechas cuentan para la adherencia
// al cronograma.
type Task struct {
	ID          string
	CompanyID   string
	ProjectID   string // vacío si la tarea no está ligada a un proyecto
	SprintID    string // vacío si está fuera de sprint
	Title       string
	Type        string // ver constantes TaskType*
	Priority    string // baja, media, alta
	StoryPoints int
	Status      string // ver constantes TaskStatus*
	DueDate     *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Sprint iteración del tablero ágil; la velocidad se calcula solo sobre
// sprints cerrados.
type Sprint struct {
	ID        string
	CompanyID string
	Name      string
	Status    string // ver constantes SprintStatus*
	CreatedAt time.Time
	UpdatedAt time.Time
}
