package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Nomina-api/internal/application/report"
	infrapdf "github.com/jhoicas/Nomina-api/internal/infrastructure/pdf"
)

var reportOut string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Genera el reporte de nómina mensual en PDF",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", "archivo de salida (por defecto nomina-YYYY-MM.pdf)")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	uc := report.NewReportUseCase(a.roster, infrapdf.NewMarotoPayrollGenerator(), report.Config{
		Title:      a.cfg.Report.Title,
		WindowDays: a.cfg.Report.BirthdayWindowDays,
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out, filename, err := uc.DownloadPDF(ctx)
	if err != nil {
		return fmt.Errorf("generar reporte: %w", err)
	}
	if reportOut != "" {
		filename = reportOut
	}
	if err := os.WriteFile(filename, out, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", filename, err)
	}
	a.log.Info().Str("file", filename).Int("bytes", len(out)).Msg("reporte generado")
	fmt.Fprintln(cmd.OutOrStdout(), filename)
	return nil
}
