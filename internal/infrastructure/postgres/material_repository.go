package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/buildstock-api/internal/domain"
	"github.com/tu-usuario/buildstock-api/internal/domain/entity"
	"github.com/tu-usuario/buildstock-api/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implementación de MaterialRepository sobre PostgreSQL (usable con pool o tx).
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador del catálogo. Pasar pool o tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

const materialColumns = `id, name, unit, min_stock, max_stock, description, created_at, active`

// GetOrCreate busca por nombre case-insensitive; si no existe inserta con la
// unidad dada y umbrales en cero. La unicidad la garantiza el índice único
// sobre LOWER(name): si dos callers insertan a la vez, el perdedor reintenta
// la búsqueda una vez y devuelve la fila del ganador.
func (r *MaterialRepo) GetOrCreate(ctx context.Context, name, unit string) (*entity.Material, error) {
	material, err := r.findByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if material != nil {
		return material, nil
	}

	insert := `
		INSERT INTO materials (id, name, unit, min_stock, created_at, active)
		VALUES ($1, $2, $3, 0, $4, TRUE)
		ON CONFLICT (lower(name)) DO NOTHING
		RETURNING ` + materialColumns
	var m entity.Material
	err = r.q.QueryRow(ctx, insert, uuid.New().String(), name, unit, time.Now()).Scan(
		&m.ID, &m.Name, &m.Unit, &m.MinStock, &m.MaxStock, &m.Description, &m.CreatedAt, &m.Active,
	)
	if err == nil {
		return &m, nil
	}
	// Sin fila devuelta: otro caller ganó el insert. También puede aflorar
	// 23505 si el conflict target no aplicó; en ambos casos se reintenta la
	// búsqueda una única vez.
	if errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err) {
		material, err = r.findByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if material != nil {
			return material, nil
		}
		return nil, fmt.Errorf("get or create material %q: fila ausente tras conflicto", name)
	}
	return nil, fmt.Errorf("insert material: %w", err)
}

func (r *MaterialRepo) findByName(ctx context.Context, name string) (*entity.Material, error) {
	query := `
		SELECT ` + materialColumns + `
		FROM materials WHERE LOWER(name) = LOWER($1)`
	var m entity.Material
	err := r.q.QueryRow(ctx, query, name).Scan(
		&m.ID, &m.Name, &m.Unit, &m.MinStock, &m.MaxStock, &m.Description, &m.CreatedAt, &m.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find material by name: %w", err)
	}
	return &m, nil
}

// GetByID obtiene un material por ID.
func (r *MaterialRepo) GetByID(ctx context.Context, id string) (*entity.Material, error) {
	query := `
		SELECT ` + materialColumns + `
		FROM materials WHERE id = $1`
	var m entity.Material
	err := r.q.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Name, &m.Unit, &m.MinStock, &m.MaxStock, &m.Description, &m.CreatedAt, &m.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return &m, nil
}

// UpdateLimits actualiza los umbrales de un material activo.
// Devuelve domain.ErrNotFound si ninguna fila coincide.
func (r *MaterialRepo) UpdateLimits(ctx context.Context, id string, minStock decimal.Decimal, maxStock *decimal.Decimal) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE materials SET min_stock = $2, max_stock = $3 WHERE id = $1 AND active`,
		id, minStock, maxStock,
	)
	if err != nil {
		return fmt.Errorf("update material limits: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListActive lista materiales activos ordenados por nombre.
func (r *MaterialRepo) ListActive(ctx context.Context) ([]*entity.Material, error) {
	query := `
		SELECT ` + materialColumns + `
		FROM materials WHERE active ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(&m.ID, &m.Name, &m.Unit, &m.MinStock, &m.MaxStock, &m.Description, &m.CreatedAt, &m.Active); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Deactivate marca el material como inactivo; la fila se conserva por la
// integridad referencial de los movimientos históricos.
func (r *MaterialRepo) Deactivate(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE materials SET active = FALSE WHERE id = $1 AND active`, id)
	if err != nil {
		return fmt.Errorf("deactivate material: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
