package crm

import (
	"github.com/shopspring/decimal"

	"github.com/operix/plataforma-api/internal/domain/entity"
)

// TaxRate IVA fijo aplicado al subtotal de toda cotización (18%).
// No hay conversión de moneda: la moneda es una etiqueta, no una dimensión.
var TaxRate = decimal.NewFromFloat(0.18)

// QuoteTotals calcula subtotal, impuesto y total de una cotización
// (servicio de dominio). Subtotal = Σ TotalPrice de las líneas;
// Tax = Subtotal × 18% redondeado a 2 decimales; Total = Subtotal + Tax.
func QuoteTotals(items []entity.QuoteItem) (subtotal, tax, total decimal.Decimal) {
	subtotal = decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.TotalPrice)
	}
	tax = subtotal.Mul(TaxRate).Round(2)
	total = subtotal.Add(tax)
	return subtotal, tax, total
}

// LineTotal calcula el total de una línea: cantidad × precio unitario,
// redondeado a 2 decimales.
func LineTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice).Round(2)
}
