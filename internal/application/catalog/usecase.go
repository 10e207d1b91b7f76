// Package catalog contiene los casos de uso del catálogo de materiales.
package catalog

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/buildstock-api/internal/application/dto"
	"github.com/tu-usuario/buildstock-api/internal/domain"
	"github.com/tu-usuario/buildstock-api/internal/domain/entity"
	"github.com/tu-usuario/buildstock-api/internal/domain/repository"
)

// CatalogUseCase gestiona materiales: creación perezosa, umbrales y listado.
type CatalogUseCase struct {
	materialRepo repository.MaterialRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(materialRepo repository.MaterialRepository) *CatalogUseCase {
	return &CatalogUseCase{materialRepo: materialRepo}
}

// GetOrCreate resuelve el ID de un material por nombre (case-insensitive),
// creándolo con la unidad dada si no existe. unit vacía aplica "un".
func (uc *CatalogUseCase) GetOrCreate(ctx context.Context, name, unit string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.ErrInvalidInput
	}
	if unit == "" {
		unit = entity.DefaultUnit
	}
	material, err := uc.materialRepo.GetOrCreate(ctx, name, unit)
	if err != nil {
		return "", err
	}
	return material.ID, nil
}

// UpdateLimits actualiza min/max de un material activo.
// Valida min >= 0 y max > min cuando max está definido.
func (uc *CatalogUseCase) UpdateLimits(ctx context.Context, id string, minStock decimal.Decimal, maxStock *decimal.Decimal) error {
	if id == "" || minStock.IsNegative() {
		return domain.ErrInvalidInput
	}
	if maxStock != nil && !maxStock.GreaterThan(minStock) {
		return domain.ErrInvalidInput
	}
	return uc.materialRepo.UpdateLimits(ctx, id, minStock, maxStock)
}

// ListActive lista los materiales activos ordenados por nombre.
func (uc *CatalogUseCase) ListActive(ctx context.Context) ([]dto.MaterialDTO, error) {
	materials, err := uc.materialRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaterialDTO, 0, len(materials))
	for _, m := range materials {
		out = append(out, dto.MaterialDTO{
			ID:          m.ID,
			Name:        m.Name,
			Unit:        m.Unit,
			MinStock:    m.MinStock,
			MaxStock:    m.MaxStock,
			Description: m.Description,
			CreatedAt:   m.CreatedAt,
		})
	}
	return out, nil
}

// Deactivate desactiva un material (soft delete); el historial de movimientos
// se conserva por integridad referencial.
func (uc *CatalogUseCase) Deactivate(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.materialRepo.Deactivate(ctx, id)
}
