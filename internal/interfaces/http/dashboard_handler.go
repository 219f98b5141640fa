package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Inventario-visibility/internal/application/analytics"
)

// DashboardHandler maneja los KPIs del tablero.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve stock total, demanda total, fill rate y conteo por estado.
// GET /api/dashboard/summary
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}

// GetTrend devuelve la serie diaria stock vs demanda.
// GET /api/dashboard/trend?range=7d|14d|30d (vacío = 7d)
func (h *DashboardHandler) GetTrend(c *fiber.Ctx) error {
	trend, err := h.uc.GetTrend(c.UserContext(), c.Query("range"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(trend)
}
