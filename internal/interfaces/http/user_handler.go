package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/buildstock-api/internal/application/auth"
	"github.com/tu-usuario/buildstock-api/internal/application/dto"
)

// UserHandler expone el listado de usuarios activos.
type UserHandler struct {
	uc *auth.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *auth.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Lista los usuarios activos
// @Tags         users
// @Produce      json
// @Success      200  {array}   dto.UserDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.uc.ListActive(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(users)
}
