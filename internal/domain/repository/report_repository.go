package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StockSummaryRow es una fila del resumen de stock: el total derivado de un
// material activo junto con sus umbrales. Los materiales sin movimientos
// aparecen con Total=0 y LastMovementAt=nil.
type StockSummaryRow struct {
	MaterialID     string
	Material       string
	Total          decimal.Decimal
	Unit           string
	MinStock       decimal.Decimal
	MaxStock       *decimal.Decimal
	LastMovementAt *time.Time
}

// MovementStats conteos agregados para el dashboard.
type MovementStats struct {
	TotalMaterials int64 // materiales activos distintos
	TotalMovements int64
	TotalIncoming  int64
	TotalOutgoing  int64
}

// ReportRepository consultas de solo lectura para el agregador de stock y el dashboard.
type ReportRepository interface {
	// StockSummary devuelve una fila por material activo (incluidos los de
	// cero movimientos), ordenadas por nombre.
	StockSummary(ctx context.Context) ([]StockSummaryRow, error)
	MovementStats(ctx context.Context) (MovementStats, error)
}
