package dto

import "github.com/shopspring/decimal"

// DashboardDTO respuesta de GET /api/dashboard.
// Labels y Values son secuencias paralelas (nombre de material, total derivado)
// con una posición por material activo, incluidos los de cero movimientos.
type DashboardDTO struct {
	Labels []string          `json:"labels"`
	Values []decimal.Decimal `json:"values"`

	// Últimos movimientos (máximo 20, más recientes primero)
	Latest []MovementDTO `json:"latest"`

	Stats DashboardStatsDTO `json:"stats"`
}

// DashboardStatsDTO conteos agregados del dashboard.
type DashboardStatsDTO struct {
	TotalMaterials int64 `json:"total_materials"` // materiales activos distintos
	TotalMovements int64 `json:"total_movements"`
	TotalIncoming  int64 `json:"total_incoming"`
	TotalOutgoing  int64 `json:"total_outgoing"`
	LowStock       int64 `json:"low_stock"` // materiales en o bajo su min_stock
}
