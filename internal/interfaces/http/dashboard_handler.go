package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/buildstock-api/internal/application/analytics"
	"github.com/tu-usuario/buildstock-api/internal/application/dto"
)

// DashboardHandler maneja los endpoints de lectura agregada: resumen y dashboard.
type DashboardHandler struct {
	summary   *analytics.SummaryUseCase
	dashboard *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(summary *analytics.SummaryUseCase, dashboard *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{summary: summary, dashboard: dashboard}
}

// GetSummary godoc
// @Summary      Resumen de stock actual por material activo
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}   dto.StockSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	rows, err := h.summary.Summary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(rows)
}

// GetDashboard godoc
// @Summary      Vista compuesta del dashboard
// @Description  Series paralelas labels/values por material activo, últimos 20
//               movimientos y conteos agregados.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	board, err := h.dashboard.Dashboard(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(board)
}
