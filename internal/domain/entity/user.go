package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
)

// SystemUserName etiqueta fija con la que se muestran los movimientos sin usuario.
const SystemUserName = "Sistema"

// User representa un usuario del sistema. En el modo de despliegue actual la
// autenticación está desactivada por feature flag y los movimientos pueden
// quedar atribuidos a un usuario nulo.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash; vacío si el usuario nunca inició sesión
	Role         string // admin, operador
	CreatedAt    time.Time
	Active       bool
}
