package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un proyecto.
const (
	ProjectStatusPlanning   = "planning"
	ProjectStatusInProgress = "in_progress"
	ProjectStatusReview     = "review"
	ProjectStatusCompleted  = "completed"
)

// Milestone hito de pago embebido en el proyecto: porcentaje del total,
// marcado como pagado de forma independiente.
type Milestone struct {
	Name        string          `json:"name"`
	Percentage  decimal.Decimal `json:"percentage"`
	IsPaid      bool            `json:"is_paid"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
}

// Project representa un proyecto de entrega. Puede nacer de la cascada
// oportunidad→proyecto (OpportunityID poblado) o crearse directamente.
type Project struct {
	ID            string
	CompanyID     string
	ClientID      string
	OpportunityID string // vacío si el proyecto se creó directamente
	Title         string
	Status        string // ver constantes ProjectStatus*
	Milestones    []Milestone
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DefaultMilestones hitos por defecto para proyectos creados por la cascada:
// dos pagos del 50% (anticipo y entrega), ambos inicialmente sin pagar.
func DefaultMilestones() []Milestone {
	half := decimal.NewFromInt(50)
	return []Milestone{
		{Name: "Anticipo", Percentage: half},
		{Name: "Entrega final", Percentage: half},
	}
}
