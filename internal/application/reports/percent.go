// Package reports contiene el motor de reportes: vistas derivadas de solo
// lectura calculadas por escaneo de colecciones y reducción en memoria.
// No hay vistas materializadas: cada llamada toma un snapshot y recalcula.
package reports

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// percent2 devuelve part/total como porcentaje con 2 decimales; 0 si total es 0.
func percent2(part, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(part)).Mul(hundred).
		Div(decimal.NewFromInt(int64(total))).Round(2)
}

// percentInt devuelve part/total como porcentaje redondeado a entero; 0 si
// total es 0. Las tasas de riesgos e hitos usan esta variante: la asimetría
// de redondeo frente a percent2 es contrato con los consumidores.
func percentInt(part, total int) int {
	if total == 0 {
		return 0
	}
	p := decimal.NewFromInt(int64(part)).Mul(hundred).
		Div(decimal.NewFromInt(int64(total))).Round(0)
	return int(p.IntPart())
}
