package stock

import (
	"context"

	"github.com/tu-usuario/buildstock-api/internal/application/dto"
	"github.com/tu-usuario/buildstock-api/internal/domain/repository"
)

// DefaultListLimit límite por defecto de GET /api/movements.
const DefaultListLimit = 1000

// ListMovementsUseCase lista el libro enriquecido (join con materials y users).
type ListMovementsUseCase struct {
	movementRepo repository.MovementRepository
}

// NewListMovementsUseCase construye el caso de uso.
func NewListMovementsUseCase(movementRepo repository.MovementRepository) *ListMovementsUseCase {
	return &ListMovementsUseCase{movementRepo: movementRepo}
}

// ListAll devuelve hasta limit movimientos, más recientes primero.
// limit <= 0 aplica DefaultListLimit.
func (uc *ListMovementsUseCase) ListAll(ctx context.Context, limit int) ([]dto.MovementDTO, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	records, err := uc.movementRepo.ListEnriched(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementDTO, 0, len(records))
	for _, r := range records {
		out = append(out, dto.MovementDTO{
			ID:        r.ID,
			Material:  r.Material,
			Quantity:  r.Quantity,
			Unit:      r.Unit,
			Type:      r.Type,
			Location:  r.Location,
			Message:   r.Message,
			Timestamp: r.Timestamp,
			UserName:  r.UserName,
		})
	}
	return out, nil
}
