package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/buildstock-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el agregador de stock y el dashboard.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// StockSummary devuelve el total derivado por material activo, incluidos los de
// cero movimientos (LEFT JOIN con COALESCE a 0), ordenados por nombre.
func (r *ReportRepo) StockSummary(ctx context.Context) ([]repository.StockSummaryRow, error) {
	const query = `
	SELECT
	    m.id,
	    m.name                           AS material,
	    COALESCE(SUM(sm.quantity), 0)    AS total,
	    m.unit,
	    m.min_stock,
	    m.max_stock,
	    MAX(sm.timestamp)                AS last_movement_at
	FROM materials m
	LEFT JOIN stock_movements sm ON sm.material_id = m.id
	WHERE m.active
	GROUP BY m.id, m.name, m.unit, m.min_stock, m.max_stock
	ORDER BY m.name`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report.StockSummary: %w", err)
	}
	defer rows.Close()

	var results []repository.StockSummaryRow
	for rows.Next() {
		var row repository.StockSummaryRow
		if err := rows.Scan(
			&row.MaterialID,
			&row.Material,
			&row.Total,
			&row.Unit,
			&row.MinStock,
			&row.MaxStock,
			&row.LastMovementAt,
		); err != nil {
			return nil, fmt.Errorf("report.StockSummary scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// MovementStats devuelve los conteos agregados sobre materiales activos.
// Usa FILTER para contar entradas y salidas en una sola pasada.
func (r *ReportRepo) MovementStats(ctx context.Context) (repository.MovementStats, error) {
	const query = `
	SELECT
	    COUNT(DISTINCT m.id)                                   AS total_materials,
	    COUNT(sm.id)                                           AS total_movements,
	    COUNT(sm.id) FILTER (WHERE sm.type = 'incoming')       AS total_incoming,
	    COUNT(sm.id) FILTER (WHERE sm.type = 'outgoing')       AS total_outgoing
	FROM materials m
	LEFT JOIN stock_movements sm ON sm.material_id = m.id
	WHERE m.active`

	var stats repository.MovementStats
	err := r.q.QueryRow(ctx, query).Scan(
		&stats.TotalMaterials,
		&stats.TotalMovements,
		&stats.TotalIncoming,
		&stats.TotalOutgoing,
	)
	if err != nil {
		return repository.MovementStats{}, fmt.Errorf("report.MovementStats: %w", err)
	}
	return stats, nil
}
