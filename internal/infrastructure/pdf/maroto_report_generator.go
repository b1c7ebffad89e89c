// Package pdf implementa la generación del reporte diario "Work Activity Journal":
// una página (o más) con una sección por bitácora enviada ese día.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Work Activity Journal  │  REGULAR REPORT - DATE    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  <username>                                                  │
//	│  TODAY'S TASK                                                │
//	│  <descripción, multilínea>                                   │
//	│  TOMORROW/NEXT WORKING DAY'S TASK                            │
//	│  <plan, multilínea>                                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ... siguiente sección ...                                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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

	"github.com/jhoicas/bitacora-api/internal/application/worklog"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorAccent = &props.Color{Red: 14, Green: 165, Blue: 233}
	colorInk    = &props.Color{Red: 40, Green: 40, Blue: 40}
	colorGray   = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorFaint  = &props.Color{Red: 100, Green: 116, Blue: 139}
)

// wrapWidth caracteres por línea aproximados para el cuerpo (helvetica 9 en A4 con márgenes de 10).
const wrapWidth = 105

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa worklog.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateDailyReport genera el PDF del día y devuelve sus bytes.
// Un slice vacío de entries produce un documento válido con solo la cabecera.
func (g *MarotoReportGenerator) GenerateDailyReport(
	_ context.Context,
	date string,
	entries []worklog.ReportEntry,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Work Activity Journal", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRows(date)...)
	for _, e := range entries {
		m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.1}))
		m.AddRows(entryRows(e)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRows: título del reporte + fecha.
func headerRows(date string) []core.Row {
	return []core.Row{
		row.New(14).Add(col.New(12).Add(
			text.New("Work Activity Journal", props.Text{
				Style: fontstyle.Bold, Size: 20, Top: 2,
			}),
		)),
		row.New(8).Add(col.New(12).Add(
			text.New("REGULAR REPORT - DATE: "+date, props.Text{
				Size: 9, Color: colorFaint, Top: 1,
			}),
		)),
		line.NewRow(3, props.Line{Color: colorAccent, Thickness: 0.5}),
	}
}

// entryRows: sección de una bitácora (username + tarea de hoy + plan de mañana).
func entryRows(e worklog.ReportEntry) []core.Row {
	rows := []core.Row{
		row.New(9).Add(col.New(12).Add(
			text.New(e.Username, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorAccent, Top: 2,
			}),
		)),
	}
	rows = append(rows, labeledTextRows("TODAY'S TASK", e.Description)...)
	rows = append(rows, labeledTextRows("TOMORROW/NEXT WORKING DAY'S TASK", e.PlanForTomorrow)...)
	return rows
}

// labeledTextRows: etiqueta en gris + cuerpo multilínea con sangría.
func labeledTextRows(label, body string) []core.Row {
	rows := []core.Row{
		row.New(5).Add(col.New(12).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1}),
		)),
	}
	for _, ln := range wrapText(body, wrapWidth) {
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New(ln, props.Text{Size: 9, Color: colorInk, Left: 3, Top: 0.5, Align: align.Left}),
		)))
	}
	rows = append(rows, row.New(2))
	return rows
}

// wrapText parte el texto en líneas de como máximo width caracteres, cortando en espacios.
// Respeta los saltos de línea del usuario. Siempre devuelve al menos una línea.
func wrapText(s string, width int) []string {
	var out []string
	for _, paragraph := range strings.Split(s, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if len(line)+1+len(w) > width {
				out = append(out, line)
				line = w
				continue
			}
			line += " " + w
		}
		out = append(out, line)
	}
	if len(out) == 0 {
		out = []string{""}
	}
	return out
}
