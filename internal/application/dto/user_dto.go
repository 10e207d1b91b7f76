package dto

import "time"

// UserDTO usuario para listados (nunca expone el hash de contraseña).
type UserDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest body para POST /api/auth/login (solo con AUTH_ENABLED=true).
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token emitido tras un login correcto.
type LoginResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}
