package auth

import (
	"context"

	"github.com/tu-usuario/buildstock-api/internal/application/dto"
	"github.com/tu-usuario/buildstock-api/internal/domain/repository"
)

// UserUseCase listado de usuarios activos (los movimientos los referencian
// opcionalmente para atribución).
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// ListActive lista usuarios activos ordenados por nombre, sin el hash.
func (uc *UserUseCase) ListActive(ctx context.Context) ([]dto.UserDTO, error) {
	users, err := uc.userRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserDTO{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}
	return out, nil
}
