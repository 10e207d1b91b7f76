package stock

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/buildstock-api/internal/domain/repository"
)

// SufficiencyResult resultado de la verificación previa a una salida.
type SufficiencyResult struct {
	Sufficient   bool
	CurrentStock decimal.Decimal
}

// CheckSufficiency calcula el stock actual del material como la suma de todos
// sus movimientos (cero si no hay filas) y lo compara contra lo solicitado.
// El repositorio puede estar atado al pool (modo optimista) o a una tx
// serializable (modo estricto); la verificación es idéntica en ambos casos.
func CheckSufficiency(ctx context.Context, movementRepo repository.MovementRepository, materialID string, requested decimal.Decimal) (SufficiencyResult, error) {
	current, err := movementRepo.SumByMaterial(ctx, materialID)
	if err != nil {
		return SufficiencyResult{}, err
	}
	return SufficiencyResult{
		Sufficient:   current.GreaterThanOrEqual(requested),
		CurrentStock: current,
	}, nil
}
