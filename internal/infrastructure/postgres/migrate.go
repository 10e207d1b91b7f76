package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/tu-usuario/buildstock-api/pkg/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate aplica las migraciones goose embebidas (esquema e índices del libro
// de stock) al arranque. goose necesita *sql.DB, así que abre una conexión
// corta vía el driver stdlib de pgx, independiente del pool.
func Migrate(ctx context.Context, cfg config.DBConfig) error {
	db, err := sql.Open("pgx", cfg.ConnectionString())
	if err != nil {
		return fmt.Errorf("abrir conexión de migración: %w", err)
	}
	defer db.Close()

	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("fs de migraciones: %w", err)
	}
	provider, err := goose.NewProvider(goose.DialectPostgres, db, sub)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
