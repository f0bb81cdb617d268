package entity

import "time"

// Estados de un riesgo de proyecto.
const (
	RiskStatusIdentified = "identified"
	RiskStatusMitigating = "mitigating"
	RiskStatusResolved   = "resolved"
	RiskStatusAccepted   = "accepted"
)

// ProjectRisk riesgo identificado sobre un proyecto; se transiciona manualmente
// y UpdatedAt se estampa en cada actualización.
type ProjectRisk struct {
	ID          string
	CompanyID   string
	ProjectID   string
	OwnerID     string
	Description string
	Probability string // baja, media, alta
	Impact      string // bajo, medio, alto
	Status      string // ver constantes RiskStatus*
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
