package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/buildstock-api/internal/domain/entity"
)

// MovementRecord es el modelo de lectura de un movimiento enriquecido con el
// nombre/unidad del material y el nombre del usuario ("Sistema" si es nulo).
type MovementRecord struct {
	ID        string
	Material  string
	Quantity  decimal.Decimal
	Unit      string
	Type      string
	Location  string
	Message   string
	Timestamp time.Time
	UserName  string
}

// MovementRepository define el puerto de persistencia del libro de movimientos.
// El libro es append-only: no hay update ni delete.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	// SumByMaterial devuelve la suma con signo de todos los movimientos del
	// material (cero si no hay filas). Es el "stock actual" derivado.
	SumByMaterial(ctx context.Context, materialID string) (decimal.Decimal, error)
	// ListEnriched lista movimientos con join a materials y users,
	// más recientes primero.
	ListEnriched(ctx context.Context, limit int) ([]MovementRecord, error)
}
