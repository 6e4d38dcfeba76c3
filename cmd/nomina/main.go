// Package main punto de entrada del sistema de nómina (consola, API HTTP y reporte PDF).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Nomina-api/internal/application/roster"
	"github.com/jhoicas/Nomina-api/internal/infrastructure/csvfile"
	"github.com/jhoicas/Nomina-api/pkg/config"
	"github.com/jhoicas/Nomina-api/pkg/logger"
)

var dataFile string

var rootCmd = &cobra.Command{
	Use:          "nomina",
	Short:        "Sistema de nómina de empleados",
	Long:         "Gestiona el roster de empleados, calcula el pago mensual por rol y persiste en un archivo CSV plano.",
	SilenceUsage: true,
	RunE:         runConsole,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "ruta del archivo de datos (por defecto DATA_FILE o data/employees.csv)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app dependencias comunes a todos los subcomandos.
type app struct {
	cfg    *config.Config
	log    *logger.Logger
	roster *roster.Roster
}

// bootstrap carga configuración, logger y roster. Un archivo ilegible deja el
// roster vacío y se registra; no aborta el arranque.
func bootstrap() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	if dataFile != "" {
		cfg.Data.File = dataFile
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("data", cfg.Data.File).
		Msg("iniciando aplicación")

	r := roster.New(csvfile.NewFileStore(cfg.Data.File), log)
	if err := r.Load(); err != nil {
		log.Warn().Err(err).Msg("se continúa con el roster vacío")
	}
	return &app{cfg: cfg, log: log, roster: r}, nil
}
