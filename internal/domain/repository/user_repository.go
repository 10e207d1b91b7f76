package repository

import (
	"context"

	"github.com/tu-usuario/buildstock-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para usuarios.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// ListActive lista los usuarios activos ordenados por nombre.
	ListActive(ctx context.Context) ([]*entity.User, error)
}
