package entity

import "time"

// Company representa una organización/tenant de la plataforma (multi-tenant).
type Company struct {
	ID        string
	Name      string
	TaxID     string // NIT o RUC de la organización
	Address   string
	Phone     string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
