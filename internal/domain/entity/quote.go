package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una cotización.
const (
	QuoteStatusBorrador  = "borrador"
	QuoteStatusEnviado   = "enviado"
	QuoteStatusAceptado  = "aceptado"
	QuoteStatusRechazado = "rechazado"
)

// QuoteItem línea de una cotización. TotalPrice = Quantity × UnitPrice,
// calculado al crear; se persiste para no depender del redondeo del cliente.
type QuoteItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// Quote representa una cotización asociada a una Opportunity.
// Puede haber varias por oportunidad; solo la transición a "aceptado"
// escribe de vuelta sobre la oportunidad padre (cascada de una vía).
type Quote struct {
	ID            string
	CompanyID     string
	OpportunityID string
	Items         []QuoteItem
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal // IVA 18% fijo sobre el subtotal
	Total         decimal.Decimal
	Currency      string // etiqueta, no dimensión calculada
	Status        string // ver constantes QuoteStatus*
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
