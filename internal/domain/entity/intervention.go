package entity

import "time"

// Estados de una intervención de campo.
const (
	InterventionStatusScheduled = "scheduled"
	InterventionStatusEnRoute   = "en_route"
	InterventionStatusWorking   = "working"
	InterventionStatusCompleted = "completed"
)

// Tipos de intervención de campo.
const (
	InterventionTypeInstalacion   = "instalacion"
	InterventionTypeMantenimiento = "mantenimiento"
	InterventionTypeRetiro        = "retiro"
)

// FieldIntervention representa una visita técnica en sitio asociada a un proyecto.
// Completarla con seriales dispara la conciliación de inventario
// (in_stock → installed) por cada serial reportado.
type FieldIntervention struct {
	ID                string
	CompanyID         string
	ProjectID         string
	TechnicianID      string
	Type              string // ver constantes InterventionType*
	SiteLocation      string
	Status            string // ver constantes InterventionStatus*
	HardwareSerials   []string
	EvidencePhotosURL []string
	ScheduledAt       time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
