package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/buildstock-api/internal/application/dto"
	"github.com/tu-usuario/buildstock-api/internal/application/stock"
	"github.com/tu-usuario/buildstock-api/internal/domain"
)

// StockHandler maneja las peticiones HTTP del libro de movimientos.
type StockHandler struct {
	record *stock.RecordMovementUseCase
	list   *stock.ListMovementsUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(record *stock.RecordMovementUseCase, list *stock.ListMovementsUseCase) *StockHandler {
	return &StockHandler{record: record, list: list}
}

// RecordMovement godoc
// @Summary      Registrar un movimiento de stock
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "material, quantity (>0), type (incoming|outgoing), location?, message?, unit?"
// @Success      201   {object}  dto.RecordMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *StockHandler) RecordMovement(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.record.RecordMovement(c.Context(), stock.RecordMovementInput{
		MaterialName: in.Material,
		Quantity:     in.Quantity,
		Type:         in.Type,
		UserID:       GetUserID(c),
		Location:     in.Location,
		Message:      in.Message,
		Unit:         in.Unit,
	})
	if err != nil {
		var insufficient *domain.InsufficientStockError
		if errors.As(err, &insufficient) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: insufficient.Error()})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RecordMovementResponse{ID: id})
}

// ListMovements godoc
// @Summary      Listar movimientos (más recientes primero)
// @Tags         movements
// @Produce      json
// @Param        limit  query  int  false  "máximo de filas (default 1000)"
// @Success      200  {array}   dto.MovementDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", stock.DefaultListLimit)
	movements, err := h.list.ListAll(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(movements)
}
