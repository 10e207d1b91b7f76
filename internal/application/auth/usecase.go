// Package auth contiene el caso de uso de autenticación. En el despliegue por
// defecto la autenticación está desactivada (AUTH_ENABLED=false) y este módulo
// no se monta en el router; el ledger acepta movimientos con usuario nulo.
package auth

import (
	"context"

	"github.com/tu-usuario/buildstock-api/internal/application/dto"
	"github.com/tu-usuario/buildstock-api/internal/domain"
	"github.com/tu-usuario/buildstock-api/internal/domain/repository"
	"github.com/tu-usuario/buildstock-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login con bcrypt + emisión de JWT.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica credenciales y devuelve un token HS256 con user_id y role.
// Devuelve domain.ErrInvalidCredentials tanto para email desconocido como para
// contraseña incorrecta (sin distinguir, para no filtrar existencia de cuentas).
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active || user.PasswordHash == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserDTO{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}
