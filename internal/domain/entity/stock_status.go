package entity

import "github.com/shopspring/decimal"

// Estados derivados del stock de un material frente a sus umbrales.
// Nunca se persisten; se calculan sobre el total derivado del libro.
const (
	StockStatusLow    = "low"
	StockStatusNormal = "normal"
	StockStatusHigh   = "high"
)

// ClassifyStock clasifica el total actual de un material:
// low si total <= minStock; high si maxStock está definido y total >= maxStock;
// normal en cualquier otro caso. "low" gana cuando ambos umbrales se cruzan
// (min mal configurado por encima de max).
func ClassifyStock(total, minStock decimal.Decimal, maxStock *decimal.Decimal) string {
	if total.LessThanOrEqual(minStock) {
		return StockStatusLow
	}
	if maxStock != nil && total.GreaterThanOrEqual(*maxStock) {
		return StockStatusHigh
	}
	return StockStatusNormal
}
