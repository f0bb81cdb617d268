package entity

import "time"

// Estados de un ticket de soporte.
const (
	TicketStatusAbierto    = "abierto"
	TicketStatusEnProgreso = "en_progreso"
	TicketStatusResuelto   = "resuelto"
)

// Ticket solicitud de soporte de un cliente (portal). Alimenta el contador de
// tickets abiertos y el feed de actividad reciente del dashboard.
type Ticket struct {
	ID        string
	CompanyID string
	ClientID  string
	Subject   string
	Status    string // ver constantes TicketStatus*
	CreatedAt time.Time
	UpdatedAt time.Time
}
