// Package analytics contiene los casos de uso de lectura del agregador de
// stock: resumen por material y dashboard.
package analytics

import (
	"context"
	"fmt"

	"github.com/tu-usuario/buildstock-api/internal/application/dto"
	"github.com/tu-usuario/buildstock-api/internal/domain/entity"
	"github.com/tu-usuario/buildstock-api/internal/domain/repository"
)

// SummaryUseCase genera el resumen de stock actual por material activo.
// El total de cada material es siempre derivado (suma firmada del libro);
// recalcularlo es idempotente.
type SummaryUseCase struct {
	reportRepo repository.ReportRepository
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(reportRepo repository.ReportRepository) *SummaryUseCase {
	return &SummaryUseCase{reportRepo: reportRepo}
}

// Summary devuelve una fila por material activo (incluidos los de cero
// movimientos, con total 0), ordenadas por nombre y con el estado clasificado
// contra los umbrales.
func (uc *SummaryUseCase) Summary(ctx context.Context) ([]dto.StockSummaryDTO, error) {
	rows, err := uc.reportRepo.StockSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("resumen de stock: %w", err)
	}
	out := make([]dto.StockSummaryDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.StockSummaryDTO{
			MaterialID: row.MaterialID,
			Material:   row.Material,
			Total:      row.Total,
			Unit:       row.Unit,
			MinStock:   row.MinStock,
			MaxStock:   row.MaxStock,
			LastUpdate: row.LastMovementAt,
			Status:     entity.ClassifyStock(row.Total, row.MinStock, row.MaxStock),
		})
	}
	return out, nil
}
