package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro de stock.
const (
	MovementTypeIncoming = "incoming" // entrada: incrementa stock
	MovementTypeOutgoing = "outgoing" // salida: decrementa stock
)

// ValidMovementType indica si el tag de tipo es reconocido.
func ValidMovementType(t string) bool {
	return t == MovementTypeIncoming || t == MovementTypeOutgoing
}

// StockMovement es una entrada del libro append-only. Quantity se guarda con
// signo (+entrada, −salida); el signo lo deriva el caso de uso a partir de
// Type, nunca el caller. Una vez insertado el movimiento es inmutable.
type StockMovement struct {
	ID         string
	MaterialID string
	UserID     string // vacío = usuario nulo/sistema
	Quantity   decimal.Decimal
	Type       string
	Location   string
	Message    string
	Timestamp  time.Time // asignado en el insert, no necesariamente único
}
