package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/buildstock-api/internal/application/stock"
	"github.com/tu-usuario/buildstock-api/internal/domain/repository"
)

// Ensure TxRunner implements stock.TxRunner.
var _ stock.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunSerializable inicia una transacción SERIALIZABLE, ejecuta fn con repos
// atados a la tx y hace Commit o Rollback. Es la variante estricta del motor
// de stock: cierra la carrera entre la verificación de suficiencia y el insert
// cuando hay salidas concurrentes del mismo material.
func (r *TxRunner) RunSerializable(ctx context.Context, fn func(
	materialRepo repository.MaterialRepository,
	movementRepo repository.MovementRepository,
) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	materialRepo := NewMaterialRepository(tx)
	movementRepo := NewMovementRepository(tx)

	if err := fn(materialRepo, movementRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
