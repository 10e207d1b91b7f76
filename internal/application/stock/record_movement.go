package stock

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/buildstock-api/internal/domain"
	"github.com/tu-usuario/buildstock-api/internal/domain/entity"
	"github.com/tu-usuario/buildstock-api/internal/domain/repository"
)

// RecordMovementUseCase registra entradas y salidas en el libro de stock:
// resuelve/crea el material, verifica suficiencia en las salidas e inserta el
// movimiento con cantidad firmada. En modo estricto la secuencia completa corre
// dentro de una transacción serializable; por defecto corre en modo optimista
// (la ventana de carrera documentada entre verificación e insert se acepta).
type RecordMovementUseCase struct {
	txRunner     TxRunner
	materialRepo repository.MaterialRepository
	movementRepo repository.MovementRepository
	strictCheck  bool
}

// NewRecordMovementUseCase construye el caso de uso. strictCheck activa la
// transacción serializable para verificación+insert (STOCK_STRICT_CHECK).
func NewRecordMovementUseCase(
	txRunner TxRunner,
	materialRepo repository.MaterialRepository,
	movementRepo repository.MovementRepository,
	strictCheck bool,
) *RecordMovementUseCase {
	return &RecordMovementUseCase{
		txRunner:     txRunner,
		materialRepo: materialRepo,
		movementRepo: movementRepo,
		strictCheck:  strictCheck,
	}
}

// RecordMovementInput entrada para registrar un movimiento.
// Quantity debe ser positiva; el signo almacenado se deriva de Type.
type RecordMovementInput struct {
	MaterialName string
	Quantity     decimal.Decimal
	Type         string // entity.MovementTypeIncoming | entity.MovementTypeOutgoing
	UserID       string // vacío = usuario nulo
	Location     string
	Message      string
	Unit         string // unidad con la que se crea el material si no existe
}

// RecordMovement valida la entrada, resuelve el material y apunta el movimiento.
// Devuelve el ID del movimiento insertado. En salidas con stock insuficiente
// devuelve *domain.InsufficientStockError sin tocar el libro.
func (uc *RecordMovementUseCase) RecordMovement(ctx context.Context, input RecordMovementInput) (string, error) {
	// Rechazar antes de tocar storage: nombre vacío, tipo desconocido,
	// cantidad no positiva. decimal.Decimal no representa NaN/Inf, de modo que
	// un valor no finito ya falló en el parseo del request.
	if strings.TrimSpace(input.MaterialName) == "" {
		return "", domain.ErrInvalidInput
	}
	if !entity.ValidMovementType(input.Type) {
		return "", domain.ErrInvalidInput
	}
	if !input.Quantity.IsPositive() {
		return "", domain.ErrInvalidInput
	}

	if uc.strictCheck {
		var id string
		err := uc.txRunner.RunSerializable(ctx, func(
			materialRepo repository.MaterialRepository,
			movementRepo repository.MovementRepository,
		) error {
			var err error
			id, err = uc.record(ctx, materialRepo, movementRepo, input)
			return err
		})
		return id, err
	}
	return uc.record(ctx, uc.materialRepo, uc.movementRepo, input)
}

// record ejecuta la secuencia resolver material → verificar → insertar con los
// repositorios dados (atados al pool o a la tx serializable del caller).
func (uc *RecordMovementUseCase) record(
	ctx context.Context,
	materialRepo repository.MaterialRepository,
	movementRepo repository.MovementRepository,
	input RecordMovementInput,
) (string, error) {
	unit := input.Unit
	if unit == "" {
		unit = entity.DefaultUnit
	}
	material, err := materialRepo.GetOrCreate(ctx, strings.TrimSpace(input.MaterialName), unit)
	if err != nil {
		return "", err
	}

	if input.Type == entity.MovementTypeOutgoing {
		res, err := CheckSufficiency(ctx, movementRepo, material.ID, input.Quantity)
		if err != nil {
			return "", err
		}
		if !res.Sufficient {
			return "", &domain.InsufficientStockError{
				Material:  material.Name,
				Available: res.CurrentStock,
				Requested: input.Quantity,
				Unit:      material.Unit,
			}
		}
	}

	quantity := input.Quantity.Abs()
	if input.Type == entity.MovementTypeOutgoing {
		quantity = quantity.Neg()
	}
	movement := &entity.StockMovement{
		ID:         uuid.New().String(),
		MaterialID: material.ID,
		UserID:     input.UserID,
		Quantity:   quantity,
		Type:       input.Type,
		Location:   input.Location,
		Message:    input.Message,
		Timestamp:  time.Now(),
	}
	if err := movementRepo.Create(ctx, movement); err != nil {
		return "", err
	}
	return movement.ID, nil
}
