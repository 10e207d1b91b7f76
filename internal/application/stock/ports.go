package stock

import (
	"context"

	"github.com/tu-usuario/buildstock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción serializable de BD,
// pasando repositorios atados a esa tx. Se usa en modo estricto para cerrar la
// ventana de carrera entre la verificación de suficiencia y el insert.
type TxRunner interface {
	RunSerializable(ctx context.Context, fn func(
		materialRepo repository.MaterialRepository,
		movementRepo repository.MovementRepository,
	) error) error
}
