package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un serial de inventario. El único camino por la conciliación
// de campo es in_stock → installed; no existe vuelta atrás por esta vía.
const (
	SerialStatusInStock   = "in_stock"
	SerialStatusInstalled = "installed"
)

// HardwareItem registro de catálogo a nivel SKU (no la unidad física).
type HardwareItem struct {
	ID        string
	CompanyID string
	SKU       string // código único por empresa
	Name      string
	CostPrice decimal.Decimal
	MinStock  int // umbral de alerta de stock bajo (unidades in_stock)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SerialNumber unidad física de inventario identificada por su serial.
type SerialNumber struct {
	ID                string
	CompanyID         string
	Serial            string // único por empresa
	HardwareID        string
	Status            string // ver constantes SerialStatus*
	AssignedProjectID string // poblado al instalarse en una intervención
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
