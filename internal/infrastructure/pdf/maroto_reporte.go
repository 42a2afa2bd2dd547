// Package pdf implementa la versión imprimible del reporte de vencimientos
// del back-office.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: GESCOP + título del reporte │ Fecha de corte       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total de alertas + desglose por severidad          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Categoría | Elemento | Regla | Vence | Días | Sev.   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de generación                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

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

	"github.com/gescop/gescop-api/internal/application/reportes"
	"github.com/gescop/gescop-api/internal/domain/entity"
)

var _ reportes.ReportePDFGenerator = (*MarotoReporteGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRojo    = &props.Color{Red: 180, Green: 30, Blue: 30}
	colorNaranja = &props.Color{Red: 200, Green: 110, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReporteGenerator implementa reportes.ReportePDFGenerator usando Maroto v2.
type MarotoReporteGenerator struct{}

// NewMarotoReporteGenerator construye el generador.
func NewMarotoReporteGenerator() *MarotoReporteGenerator { return &MarotoReporteGenerator{} }

// GenerarReporteVencimientos genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReporteGenerator) GenerarReporteVencimientos(
	_ context.Context,
	corte time.Time,
	alertas []*entity.Alerta,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Vencimientos", true).
		WithAuthor("GESCOP", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(corte))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(resumenRow(alertas))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableAlertaRows(alertas) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(corte))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del sistema (izq) y fecha de corte (der).
func headerRow(corte time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("GESCOP", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de vencimientos y alertas", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FECHA DE CORTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(corte.Format("02/01/2006"), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

// resumenRow: total de alertas y desglose por severidad.
func resumenRow(alertas []*entity.Alerta) core.Row {
	porSeveridad := map[entity.Severidad]int{}
	for _, a := range alertas {
		porSeveridad[a.Severidad]++
	}
	desglose := fmt.Sprintf("Críticas: %d   |   Altas: %d   |   Medias: %d   |   Bajas: %d   |   Informativas: %d",
		porSeveridad[entity.SeveridadCritico],
		porSeveridad[entity.SeveridadAlto],
		porSeveridad[entity.SeveridadMedio],
		porSeveridad[entity.SeveridadBajo],
		porSeveridad[entity.SeveridadInformativo],
	)
	return row.New(12).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("ALERTAS VIGENTES: %d", len(alertas)), props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(desglose, props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de alertas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Categoría", 2, align.Left),
		h("Elemento", 4, align.Left),
		h("Regla", 2, align.Left),
		h("Vence", 1, align.Center),
		h("Días", 1, align.Center),
		h("Severidad", 2, align.Left),
	)
}

// tableAlertaRows: una fila por alerta, con la severidad coloreada.
func tableAlertaRows(alertas []*entity.Alerta) []core.Row {
	result := make([]core.Row, 0, len(alertas))
	for _, a := range alertas {
		elemento := a.Elemento
		if elemento == "" {
			elemento = a.Titulo
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				string(a.Categoria),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				elemento,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				a.Regla,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				formatFecha(a.FechaVenc),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				formatDias(a.DiasRestantes),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				string(a.Severidad),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1,
					Style: estiloSeveridad(a.Severidad), Color: colorSeveridad(a.Severidad)},
			)),
		))
	}
	return result
}

// footerRow: leyenda de generación.
func footerRow(corte time.Time) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Reporte generado por GESCOP al "+corte.Format("02/01/2006")+
				". Los días restantes se calculan sobre fechas calendario; un valor negativo indica vencimiento cumplido.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func formatFecha(t *time.Time) string {
	if t == nil {
		return "—"
	}
	return t.Format("02/01/06")
}

func formatDias(d *int) string {
	if d == nil {
		return "—"
	}
	return strconv.Itoa(*d)
}

func colorSeveridad(s entity.Severidad) *props.Color {
	switch s {
	case entity.SeveridadCritico:
		return colorRojo
	case entity.SeveridadAlto:
		return colorNaranja
	default:
		return nil
	}
}

func estiloSeveridad(s entity.Severidad) fontstyle.Type {
	switch s {
	case entity.SeveridadCritico, entity.SeveridadAlto:
		return fontstyle.Bold
	default:
		return fontstyle.Normal
	}
}
