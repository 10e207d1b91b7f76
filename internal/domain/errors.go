package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
)

// InsufficientStockError detalla un rechazo por stock insuficiente: el material,
// lo disponible y lo solicitado (ambos a dos decimales en el mensaje) y la unidad.
// Satisface errors.Is(err, ErrInsufficientStock).
type InsufficientStockError struct {
	Material  string
	Available decimal.Decimal
	Requested decimal.Decimal
	Unit      string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf(
		"stock insuficiente de %q: disponible %s %s, solicitado %s %s",
		e.Material,
		e.Available.StringFixed(2), e.Unit,
		e.Requested.StringFixed(2), e.Unit,
	)
}

// Is permite comparar con el sentinel ErrInsufficientStock vía errors.Is.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
