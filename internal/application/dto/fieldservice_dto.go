package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Intervenciones de campo ───────────────────────────────────────────────────

// CreateInterventionRequest cuerpo de POST /api/interventions.
type CreateInterventionRequest struct {
	ProjectID    string    `json:"project_id"`
	TechnicianID string    `json:"technician_id"`
	Type         string    `json:"type"`
	SiteLocation string    `json:"site_location"`
	ScheduledAt  time.Time `json:"scheduled_at"`
}

// UpdateInterventionStatusRequest cuerpo de PATCH /api/interventions/:id/status.
// HardwareSerials y EvidencePhotosURL son opcionales; los seriales solo se
// concilian cuando el nuevo estado es "completed".
type UpdateInterventionStatusRequest struct {
	Status            string   `json:"status"`
	HardwareSerials   []string `json:"hardware_serials"`
	EvidencePhotosURL []string `json:"evidence_photos_url"`
}

// SerialReconciliationDTO desenlace de la conciliación de un serial.
type SerialReconciliationDTO struct {
	Serial string `json:"serial"`
	Result string `json:"result"` // applied | skipped_already_exists | skipped_not_found
}

// InterventionResponse representación HTTP de una intervención.
type InterventionResponse struct {
	ID                string    `json:"id"`
	ProjectID         string    `json:"project_id"`
	TechnicianID      string    `json:"technician_id"`
	Type              string    `json:"type"`
	SiteLocation      string    `json:"site_location"`
	Status            string    `json:"status"`
	HardwareSerials   []string  `json:"hardware_serials"`
	EvidencePhotosURL []string  `json:"evidence_photos_url"`
	ScheduledAt       time.Time `json:"scheduled_at"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// UpdateInterventionStatusResponse resultado del patch con los desenlaces
// por serial de la conciliación de inventario.
type UpdateInterventionStatusResponse struct {
	Intervention InterventionResponse      `json:"intervention"`
	Serials      []SerialReconciliationDTO `json:"serials,omitempty"`
}

// ── Inventario de hardware ────────────────────────────────────────────────────

// CreateHardwareItemRequest cuerpo de POST /api/hardware.
type CreateHardwareItemRequest struct {
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	CostPrice decimal.Decimal `json:"cost_price"`
	MinStock  int             `json:"min_stock"`
}

// CreateSerialRequest cuerpo de POST /api/hardware/:id/serials.
type CreateSerialRequest struct {
	Serial string `json:"serial"`
}

// HardwareItemResponse representación HTTP de un SKU de hardware.
type HardwareItemResponse struct {
	ID        string          `json:"id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	CostPrice decimal.Decimal `json:"cost_price"`
	MinStock  int             `json:"min_stock"`
	CreatedAt time.Time       `json:"created_at"`
}

// SerialNumberResponse representación HTTP de una unidad física.
type SerialNumberResponse struct {
	ID                string    `json:"id"`
	Serial            string    `json:"serial"`
	HardwareID        string    `json:"hardware_id"`
	Status            string    `json:"status"`
	AssignedProjectID string    `json:"assigned_project_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
