package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-visibility/internal/application/report"
)

// ReportHandler descarga de reportes.
type ReportHandler struct {
	uc *report.StockReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.StockReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// StockPDF godoc
// @Summary      Reporte PDF de stock vs demanda
// @Description  Acepta los mismos filtros que GET /api/products; incluye todos los productos filtrados.
// @Tags         reports
// @Produce      application/pdf
// @Param        search     query  string  false  "Texto"
// @Param        status     query  string  false  "healthy | low | critical | all"
// @Param        warehouse  query  string  false  "Código de bodega | all"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/stock.pdf [get]
func (h *ReportHandler) StockPDF(c *fiber.Ctx) error {
	q, err := parseProductQuery(c, 0)
	if err != nil {
		return writeError(c, err)
	}
	pdf, filename, err := h.uc.Generate(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdf)
}
