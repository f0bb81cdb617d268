package entity

import "time"

// Client representa un cliente comercial de la empresa (CRM).
// Es referencia blanda de Opportunity, Project e Invoice: no hay borrado en cascada.
type Client struct {
	ID          string
	CompanyID   string
	CompanyName string // razón social del cliente
	TaxID       string // NIT o cédula
	ContactName string
	Email       string
	Phone       string
	Status      string // activo, inactivo
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
