package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

// Invoice factura emitida a un cliente, opcionalmente ligada a un proyecto.
// La escriben handlers directos; los motores de reporte solo la leen.
type Invoice struct {
	ID        string
	CompanyID string
	ClientID  string
	ProjectID string // vacío si no está ligada a un proyecto
	Amount    decimal.Decimal
	Status    string // ver constantes InvoiceStatus*
	IssuedAt  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
