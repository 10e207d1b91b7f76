package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/buildstock-api/internal/application/catalog"
	"github.com/tu-usuario/buildstock-api/internal/application/dto"
	"github.com/tu-usuario/buildstock-api/internal/domain"
)

// MaterialHandler maneja las peticiones HTTP del catálogo de materiales.
type MaterialHandler struct {
	uc *catalog.CatalogUseCase
}

// NewMaterialHandler construye el handler.
func NewMaterialHandler(uc *catalog.CatalogUseCase) *MaterialHandler {
	return &MaterialHandler{uc: uc}
}

// List godoc
// @Summary      Listar materiales activos ordenados por nombre
// @Tags         materials
// @Produce      json
// @Success      200  {array}   dto.MaterialDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/materials [get]
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	materials, err := h.uc.ListActive(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(materials)
}

// UpdateLimits godoc
// @Summary      Actualizar umbrales min/max de un material
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del material"
// @Param        body  body  dto.UpdateLimitsRequest  true  "min_stock, max_stock (null = sin límite)"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/materials/{id}/limits [put]
func (h *MaterialHandler) UpdateLimits(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateLimitsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateLimits(c.Context(), id, in.MinStock, in.MaxStock); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "material no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "umbrales inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "umbrales actualizados"})
}

// Deactivate godoc
// @Summary      Desactivar un material (soft delete)
// @Tags         materials
// @Produce      json
// @Param        id  path  string  true  "ID del material"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materials/{id} [delete]
func (h *MaterialHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "material no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "material desactivado"})
}
