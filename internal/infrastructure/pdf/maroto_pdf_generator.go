// Package pdf genera el reporte de stock vs demanda en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha de generación + filtros             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Stock total | Demanda total | Cubrible | Fill rate   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | SKU | Bodega | Stock | Demanda | Estado  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: cantidad de productos                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/Inventario-visibility/internal/application/dto"
	"github.com/jhoicas/Inventario-visibility/internal/application/report"
	"github.com/jhoicas/Inventario-visibility/internal/domain/inventory"
)

var _ report.StockReportGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite    = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorHealthy  = &props.Color{Red: 22, Green: 128, Blue: 61}
	colorLow      = &props.Color{Red: 180, Green: 120, Blue: 0}
	colorCritical = &props.Color{Red: 185, Green: 28, Blue: 28}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa report.StockReportGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	author string
	tag    language.Tag
}

// NewMarotoPDFGenerator construye el generador. author va en los metadatos del PDF;
// tag define el separador de miles (language.English → 12,345).
func NewMarotoPDFGenerator(author string, tag language.Tag) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{author: author, tag: tag}
}

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateStockReport(ctx context.Context, r report.StockReport) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// message.Printer no es seguro entre goroutines: uno por reporte.
	p := message.NewPrinter(g.tag)

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(r.Title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(p, r.KPI))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(p, r.Rows)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(p, len(r.Rows)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(r report.StockReport) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(r.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(r.Filters, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(r.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
		),
	)
}

func kpiRow(p *message.Printer, kpi inventory.KPI) core.Row {
	cell := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 6, Align: align.Center}),
		)
	}
	return row.New(16).Add(
		cell("Stock total", p.Sprintf("%d", kpi.TotalStock)),
		cell("Demanda total", p.Sprintf("%d", kpi.TotalDemand)),
		cell("Cubrible", p.Sprintf("%d", kpi.Fulfillable)),
		cell("Fill rate", kpi.FillRate.StringFixed(2)+"%"),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 4, align.Left),
		h("SKU", 2, align.Left),
		h("Bodega", 2, align.Center),
		h("Stock", 1, align.Right),
		h("Demanda", 1, align.Right),
		h("Estado", 2, align.Center),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func tableRows(p *message.Printer, items []dto.ProductResponse) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(7).Add(
			col.New(4).Add(text.New(it.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(it.SKU, props.Text{Size: 8, Top: 1, Color: colorGray})),
			col.New(2).Add(text.New(it.Warehouse, props.Text{Size: 8, Top: 1, Align: align.Center})),
			col.New(1).Add(text.New(p.Sprintf("%d", it.Stock), props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
			col.New(1).Add(text.New(p.Sprintf("%d", it.Demand), props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
			col.New(2).Add(text.New(statusLabel(it.Status), props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1, Align: align.Center, Color: statusColor(it.Status),
			})),
		))
	}
	if len(rows) == 0 {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New("Sin productos para los filtros aplicados", props.Text{
				Size: 9, Top: 2, Align: align.Center, Color: colorGray,
			}),
		)))
	}
	return rows
}

func footerRow(p *message.Printer, count int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(p.Sprintf("%d productos", count), props.Text{Size: 7, Top: 2, Color: colorGray, Align: align.Right}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func statusLabel(s string) string {
	switch inventory.Status(s) {
	case inventory.StatusHealthy:
		return "Healthy"
	case inventory.StatusLow:
		return "Low"
	case inventory.StatusCritical:
		return "Critical"
	}
	return s
}

func statusColor(s string) *props.Color {
	switch inventory.Status(s) {
	case inventory.StatusHealthy:
		return colorHealthy
	case inventory.StatusLow:
		return colorLow
	}
	return colorCritical
}
