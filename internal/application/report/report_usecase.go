package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Nomina-api/internal/application/roster"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
)

// RosterReader consultas del roster que necesita el reporte.
type RosterReader interface {
	Ranking() []entity.Employee
	Statistics() roster.Statistics
	BirthdayReminder(ref time.Time, windowDays int) []entity.Employee
	Path() string
}

// PayrollReport datos ya calculados del reporte mensual; el generador solo los presenta.
type PayrollReport struct {
	Title       string
	GeneratedAt time.Time
	DataFile    string
	Ranking     []entity.Employee
	Statistics  roster.Statistics
	Birthdays   []entity.Employee
	WindowDays  int
}

// PayrollPDFGenerator puerto de salida para renderizar el reporte en PDF.
type PayrollPDFGenerator interface {
	GeneratePayrollPDF(ctx context.Context, rep *PayrollReport) ([]byte, error)
}

// Config parámetros del reporte.
type Config struct {
	Title      string
	WindowDays int
	Now        func() time.Time
}

// ReportUseCase arma el reporte de nómina (ranking, estadísticas y cumpleaños próximos).
type ReportUseCase struct {
	roster    RosterReader
	generator PayrollPDFGenerator
	cfg       Config
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(r RosterReader, generator PayrollPDFGenerator, cfg Config) *ReportUseCase {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &ReportUseCase{roster: r, generator: generator, cfg: cfg}
}

// Build calcula el reporte a partir del estado actual del roster.
func (uc *ReportUseCase) Build() *PayrollReport {
	now := uc.cfg.Now()
	return &PayrollReport{
		Title:       uc.cfg.Title,
		GeneratedAt: now,
		DataFile:    uc.roster.Path(),
		Ranking:     uc.roster.Ranking(),
		Statistics:  uc.roster.Statistics(),
		Birthdays:   uc.roster.BirthdayReminder(now, uc.cfg.WindowDays),
		WindowDays:  uc.cfg.WindowDays,
	}
}

// DownloadPDF genera el PDF y un nombre de archivo del tipo nomina-2025-12.pdf.
func (uc *ReportUseCase) DownloadPDF(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	rep := uc.Build()
	pdfBytes, err = uc.generator.GeneratePayrollPDF(ctx, rep)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar pdf: %w", err)
	}
	return pdfBytes, fmt.Sprintf("nomina-%s.pdf", rep.GeneratedAt.Format("2006-01")), nil
}
