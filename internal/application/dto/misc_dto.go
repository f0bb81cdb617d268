package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Facturas (handlers directos; los motores solo leen) ───────────────────────

// CreateInvoiceRequest cuerpo de POST /api/invoices.
type CreateInvoiceRequest struct {
	ClientID  string          `json:"client_id"`
	ProjectID string          `json:"project_id"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	IssuedAt  time.Time       `json:"issued_at"`
}

// InvoiceResponse representación HTTP de una factura.
type InvoiceResponse struct {
	ID        string          `json:"id"`
	ClientID  string          `json:"client_id"`
	ProjectID string          `json:"project_id,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	IssuedAt  time.Time       `json:"issued_at"`
	CreatedAt time.Time       `json:"created_at"`
}

// ── Tickets ───────────────────────────────────────────────────────────────────

// CreateTicketRequest cuerpo de POST /api/tickets.
type CreateTicketRequest struct {
	ClientID string `json:"client_id"`
	Subject  string `json:"subject"`
}

// TicketResponse representación HTTP de un ticket.
type TicketResponse struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Subject   string    `json:"subject"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ── Tablero ágil ──────────────────────────────────────────────────────────────

// CreateTaskRequest cuerpo de POST /api/tasks.
type CreateTaskRequest struct {
	ProjectID   string     `json:"project_id"`
	SprintID    string     `json:"sprint_id"`
	Title       string     `json:"title"`
	Type        string     `json:"type"`
	Priority    string     `json:"priority"`
	StoryPoints int        `json:"story_points"`
	DueDate     *time.Time `json:"due_date"`
}

// CreateSprintRequest cuerpo de POST /api/sprints.
type CreateSprintRequest struct {
	Name string `json:"name"`
}

// TaskResponse representación HTTP de una tarea.
type TaskResponse struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"project_id,omitempty"`
	SprintID    string     `json:"sprint_id,omitempty"`
	Title       string     `json:"title"`
	Type        string     `json:"type"`
	Priority    string     `json:"priority"`
	StoryPoints int        `json:"story_points"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// SprintResponse representación HTTP de un sprint.
type SprintResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
