package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/buildstock-api/internal/domain/entity"
)

// MaterialRepository define el puerto de persistencia para el catálogo de materiales (DIP).
type MaterialRepository interface {
	// GetOrCreate busca un material por nombre (case-insensitive) y lo crea con
	// la unidad dada si no existe. Idempotente: llamadas repetidas con el mismo
	// nombre devuelven siempre el mismo material sin duplicar filas.
	GetOrCreate(ctx context.Context, name, unit string) (*entity.Material, error)
	GetByID(ctx context.Context, id string) (*entity.Material, error)
	// UpdateLimits actualiza los umbrales de un material activo.
	// Devuelve domain.ErrNotFound si ninguna fila coincide.
	UpdateLimits(ctx context.Context, id string, minStock decimal.Decimal, maxStock *decimal.Decimal) error
	// ListActive lista los materiales activos ordenados por nombre.
	ListActive(ctx context.Context) ([]*entity.Material, error)
	// Deactivate marca el material como inactivo (soft delete).
	// Devuelve domain.ErrNotFound si ninguna fila coincide.
	Deactivate(ctx context.Context, id string) error
}
