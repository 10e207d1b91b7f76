package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultUnit unidad de medida por defecto cuando el caller no la indica.
const DefaultUnit = "un"

// Material representa un material del catálogo. El nombre es único de forma
// case-insensitive; el stock actual nunca se persiste aquí, siempre se deriva
// de la suma de sus movimientos. Un material nunca se borra físicamente, solo
// se desactiva (Active=false) para preservar el historial del libro.
type Material struct {
	ID          string
	Name        string
	Unit        string           // ej: "un", "kg", "m3"
	MinStock    decimal.Decimal  // umbral de stock bajo (default 0)
	MaxStock    *decimal.Decimal // umbral de stock alto (nil = sin límite)
	Description string
	CreatedAt   time.Time
	Active      bool
}
