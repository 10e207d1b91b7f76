package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/buildstock-api/internal/application/dto"
	"github.com/tu-usuario/buildstock-api/internal/domain/entity"
	"github.com/tu-usuario/buildstock-api/internal/domain/repository"
)

const dashboardRecentMovements = 20 // movimientos en el widget de recientes

// DashboardUseCase construye la vista compuesta del dashboard: series
// paralelas de totales por material, últimos movimientos y conteos agregados.
//
// Fuente de datos: ReportRepository y MovementRepository (consultas read-only).
type DashboardUseCase struct {
	reportRepo   repository.ReportRepository
	movementRepo repository.MovementRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reportRepo repository.ReportRepository, movementRepo repository.MovementRepository) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo, movementRepo: movementRepo}
}

// Dashboard arma el DashboardDTO.
//
// Tres llamadas en paralelo:
//  1. StockSummary          → Labels + Values + conteo LowStock
//  2. ListEnriched(20)      → Latest
//  3. MovementStats         → Stats de conteos
func (uc *DashboardUseCase) Dashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	type summaryResult struct {
		rows []repository.StockSummaryRow
		err  error
	}
	type latestResult struct {
		records []repository.MovementRecord
		err     error
	}
	type statsResult struct {
		stats repository.MovementStats
		err   error
	}

	summaryCh := make(chan summaryResult, 1)
	latestCh := make(chan latestResult, 1)
	statsCh := make(chan statsResult, 1)

	go func() {
		rows, err := uc.reportRepo.StockSummary(ctx)
		summaryCh <- summaryResult{rows, err}
	}()
	go func() {
		records, err := uc.movementRepo.ListEnriched(ctx, dashboardRecentMovements)
		latestCh <- latestResult{records, err}
	}()
	go func() {
		stats, err := uc.reportRepo.MovementStats(ctx)
		statsCh <- statsResult{stats, err}
	}()

	summary := <-summaryCh
	latest := <-latestCh
	stats := <-statsCh

	if summary.err != nil {
		return nil, fmt.Errorf("dashboard: resumen de stock: %w", summary.err)
	}
	if latest.err != nil {
		return nil, fmt.Errorf("dashboard: últimos movimientos: %w", latest.err)
	}
	if stats.err != nil {
		return nil, fmt.Errorf("dashboard: estadísticas: %w", stats.err)
	}

	labels := make([]string, 0, len(summary.rows))
	values := make([]decimal.Decimal, 0, len(summary.rows))
	var lowStock int64
	for _, row := range summary.rows {
		labels = append(labels, row.Material)
		values = append(values, row.Total)
		if entity.ClassifyStock(row.Total, row.MinStock, row.MaxStock) == entity.StockStatusLow {
			lowStock++
		}
	}

	latestDTOs := make([]dto.MovementDTO, 0, len(latest.records))
	for _, r := range latest.records {
		latestDTOs = append(latestDTOs, dto.MovementDTO{
			ID:        r.ID,
			Material:  r.Material,
			Quantity:  r.Quantity,
			Unit:      r.Unit,
			Type:      r.Type,
			Location:  r.Location,
			Message:   r.Message,
			Timestamp: r.Timestamp,
			UserName:  r.UserName,
		})
	}

	return &dto.DashboardDTO{
		Labels: labels,
		Values: values,
		Latest: latestDTOs,
		Stats: dto.DashboardStatsDTO{
			TotalMaterials: stats.stats.TotalMaterials,
			TotalMovements: stats.stats.TotalMovements,
			TotalIncoming:  stats.stats.TotalIncoming,
			TotalOutgoing:  stats.stats.TotalOutgoing,
			LowStock:       lowStock,
		},
	}, nil
}
