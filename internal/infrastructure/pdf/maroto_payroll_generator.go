// Package pdf implementa el reporte de nómina mensual en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título              │  Fecha + archivo de datos     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: empleados / pago total                            │
//	│  TABLA POR ROL: Rol | Cant. | Total | %                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RANKING: # | Nombre | Rol | Nivel | Pago                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CUMPLEAÑOS PRÓXIMOS                                         │
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Nomina-api/internal/application/report"
	"github.com/jhoicas/Nomina-api/internal/application/roster"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPayrollGenerator implementa report.PayrollPDFGenerator usando Maroto v2.
type MarotoPayrollGenerator struct{}

var _ report.PayrollPDFGenerator = (*MarotoPayrollGenerator)(nil)

// NewMarotoPayrollGenerator construye el generador.
func NewMarotoPayrollGenerator() *MarotoPayrollGenerator { return &MarotoPayrollGenerator{} }

// GeneratePayrollPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPayrollGenerator) GeneratePayrollPDF(_ context.Context, rep *report.PayrollReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(rep.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(rep.Statistics))
	m.AddRows(sectionRow("PAGO POR ROL"))
	m.AddRows(roleHeaderRow())
	m.AddRows(roleRows(rep.Statistics)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionRow("RANKING POR PAGO MENSUAL"))
	m.AddRows(rankingHeaderRow())
	m.AddRows(rankingRows(rep.Ranking)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionRow(fmt.Sprintf("CUMPLEAÑOS EN LOS PRÓXIMOS %d DÍAS", rep.WindowDays)))
	m.AddRows(birthdayRows(rep.Birthdays)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(rep *report.PayrollReport) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(rep.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+rep.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Archivo: "+rep.DataFile, props.Text{
				Size: 7, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func summaryRow(st roster.Statistics) core.Row {
	return row.New(10).Add(
		col.New(6).Add(text.New(fmt.Sprintf("Empleados: %d", st.Employees), props.Text{
			Style: fontstyle.Bold, Size: 10, Top: 2,
		})),
		col.New(6).Add(text.New("Pago total: $"+formatMoney(st.Total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Color: colorPrimary,
		})),
	)
}

func sectionRow(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

func headerCol(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

func cell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

func roleHeaderRow() core.Row {
	return row.New(6).Add(
		headerCol("Rol", 5, align.Left),
		headerCol("Cant.", 2, align.Center),
		headerCol("Total", 3, align.Right),
		headerCol("%", 2, align.Right),
	)
}

func roleRows(st roster.Statistics) []core.Row {
	rows := make([]core.Row, 0, len(st.ByRole))
	for _, rs := range st.ByRole {
		rows = append(rows, row.New(6).Add(
			cell(string(rs.Tag), 5, align.Left),
			cell(fmt.Sprintf("%d", rs.Count), 2, align.Center),
			cell("$"+formatMoney(rs.Total), 3, align.Right),
			cell(rs.Percent.StringFixed(2)+"%", 2, align.Right),
		))
	}
	return rows
}

func rankingHeaderRow() core.Row {
	return row.New(6).Add(
		headerCol("#", 1, align.Center),
		headerCol("Nombre", 5, align.Left),
		headerCol("Rol", 3, align.Left),
		headerCol("Nivel", 1, align.Center),
		headerCol("Pago", 2, align.Right),
	)
}

func rankingRows(ranked []entity.Employee) []core.Row {
	if len(ranked) == 0 {
		return []core.Row{emptyRow("Sin empleados registrados.")}
	}
	rows := make([]core.Row, 0, len(ranked))
	for i, e := range ranked {
		rows = append(rows, row.New(6).Add(
			cell(fmt.Sprintf("%d", i+1), 1, align.Center),
			cell(e.Name, 5, align.Left),
			cell(string(e.RoleTag()), 3, align.Left),
			cell(fmt.Sprintf("%d", e.Level), 1, align.Center),
			cell("$"+formatMoney(e.MonthlyPay()), 2, align.Right),
		))
	}
	return rows
}

func birthdayRows(list []entity.Employee) []core.Row {
	if len(list) == 0 {
		return []core.Row{emptyRow("Sin cumpleaños próximos.")}
	}
	rows := make([]core.Row, 0, len(list))
	for _, e := range list {
		rows = append(rows, row.New(6).Add(
			cell(fmt.Sprintf("%d", e.ID), 1, align.Center),
			cell(e.Name, 7, align.Left),
			cell(e.Birthday, 4, align.Right),
		))
	}
	return rows
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Color: colorGray, Top: 1}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney 2 decimales con separador de miles: 1234567.5 -> "1,234,567.50".
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String() + "." + frac
	if neg {
		return "-" + out
	}
	return out
}
