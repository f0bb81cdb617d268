package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del embudo de ventas.
const (
	OpportunityStatusLead         = "lead"
	OpportunityStatusPresentation = "presentation"
	OpportunityStatusNegotiation  = "negotiation"
	OpportunityStatusWon          = "won"
	OpportunityStatusLost         = "lost"
)

// Unidades de servicio (línea de negocio) para bucketing comercial y reportes.
const (
	ServiceUnitDigital   = "digital"
	ServiceUnitSolutions = "solutions"
	ServiceUnitInfra     = "infra"
)

// Opportunity representa una oportunidad comercial del embudo CRM.
// Al pasar a "won" dispara la creación de su Project (a lo sumo uno por oportunidad).
type Opportunity struct {
	ID             string
	CompanyID      string
	ClientID       string
	AssignedTo     string // userID del comercial responsable
	ServiceUnit    string // ver constantes ServiceUnit*
	PackageID      string // identificador del paquete/servicio cotizado
	EstimatedValue decimal.Decimal
	Status         string // ver constantes OpportunityStatus*
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
