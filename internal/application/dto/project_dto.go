package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Proyectos ─────────────────────────────────────────────────────────────────

// MilestoneDTO hito de pago embebido en el proyecto.
type MilestoneDTO struct {
	Name        string          `json:"name"`
	Percentage  decimal.Decimal `json:"percentage"`
	IsPaid      bool            `json:"is_paid"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
}

// CreateProjectRequest cuerpo de POST /api/projects (creación directa,
// sin pasar por la cascada de oportunidad).
type CreateProjectRequest struct {
	ClientID   string         `json:"client_id"`
	Title      string         `json:"title"`
	Milestones []MilestoneDTO `json:"milestones"`
}

// UpdateProjectStatusRequest cuerpo de PATCH /api/projects/:id/status.
type UpdateProjectStatusRequest struct {
	Status string `json:"status"`
}

// UpdateMilestoneRequest cuerpo de PATCH /api/projects/:id/milestones/:index.
// Campos en nil no se tocan.
type UpdateMilestoneRequest struct {
	IsPaid    *bool `json:"is_paid"`
	Completed *bool `json:"completed"` // true estampa CompletedAt ahora; false lo limpia
}

// ProjectResponse representación HTTP de un proyecto.
type ProjectResponse struct {
	ID            string         `json:"id"`
	ClientID      string         `json:"client_id"`
	OpportunityID string         `json:"opportunity_id,omitempty"`
	Title         string         `json:"title"`
	Status        string         `json:"status"`
	Milestones    []MilestoneDTO `json:"milestones"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// ProjectListResponse listado paginado de proyectos.
type ProjectListResponse struct {
	Items []ProjectResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ── Riesgos ───────────────────────────────────────────────────────────────────

// CreateRiskRequest cuerpo de POST /api/projects/:id/risks.
type CreateRiskRequest struct {
	OwnerID     string `json:"owner_id"`
	Description string `json:"description"`
	Probability string `json:"probability"`
	Impact      string `json:"impact"`
}

// UpdateRiskStatusRequest cuerpo de PATCH /api/risks/:id/status.
type UpdateRiskStatusRequest struct {
	Status string `json:"status"`
}

// RiskResponse representación HTTP de un riesgo de proyecto.
type RiskResponse struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	OwnerID     string    `json:"owner_id"`
	Description string    `json:"description"`
	Probability string    `json:"probability"`
	Impact      string    `json:"impact"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
