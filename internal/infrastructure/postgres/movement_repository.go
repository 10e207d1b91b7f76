package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/buildstock-api/internal/domain/entity"
	"github.com/tu-usuario/buildstock-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). Solo inserta y lee: el libro es append-only.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create apunta un movimiento en el libro. UserID, Location y Message vacíos
// se guardan como NULL.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, material_id, user_id, quantity, type, location, message, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	userID := (*string)(nil)
	if movement.UserID != "" {
		userID = &movement.UserID
	}
	location := (*string)(nil)
	if movement.Location != "" {
		location = &movement.Location
	}
	message := (*string)(nil)
	if movement.Message != "" {
		message = &movement.Message
	}
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.MaterialID, userID,
		movement.Quantity, movement.Type, location, message, movement.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// SumByMaterial devuelve la suma firmada de los movimientos del material.
// COALESCE devuelve cero cuando el material no tiene filas.
func (r *MovementRepo) SumByMaterial(ctx context.Context, materialID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity), 0) FROM stock_movements WHERE material_id = $1`,
		materialID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum movements: %w", err)
	}
	return total, nil
}

// ListEnriched lista movimientos con el nombre/unidad del material y el nombre
// del usuario (etiqueta fija "Sistema" si es nulo), más recientes primero.
func (r *MovementRepo) ListEnriched(ctx context.Context, limit int) ([]repository.MovementRecord, error) {
	query := `
		SELECT
			sm.id,
			m.name AS material,
			sm.quantity,
			m.unit,
			sm.type,
			COALESCE(sm.location, ''),
			COALESCE(sm.message, ''),
			sm.timestamp,
			COALESCE(u.name, 'Sistema') AS user_name
		FROM stock_movements sm
		JOIN materials m ON m.id = sm.material_id
		LEFT JOIN users u ON u.id = sm.user_id
		ORDER BY sm.timestamp DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []repository.MovementRecord
	for rows.Next() {
		var rec repository.MovementRecord
		if err := rows.Scan(&rec.ID, &rec.Material, &rec.Quantity, &rec.Unit, &rec.Type,
			&rec.Location, &rec.Message, &rec.Timestamp, &rec.UserName); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}
