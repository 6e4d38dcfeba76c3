package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Nomina-api/internal/application/report"
	infrapdf "github.com/jhoicas/Nomina-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/Nomina-api/internal/interfaces/http"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Inicia la API REST",
	Long:  "Expone el roster, los reportes y el PDF de nómina por HTTP. El acceso al roster se serializa.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "puerto de escucha (por defecto HTTP_PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	if servePort > 0 {
		a.cfg.HTTP.Port = servePort
	}

	sr := httpRouter.NewSerializedRoster(a.roster)
	reports := report.NewReportUseCase(sr, infrapdf.NewMarotoPayrollGenerator(), report.Config{
		Title:      a.cfg.Report.Title,
		WindowDays: a.cfg.Report.BirthdayWindowDays,
	})

	srv := httpRouter.NewApp(a.cfg.App.Name, a.log.Named("http"))
	httpRouter.Router(srv, httpRouter.RouterDeps{
		Roster:             sr,
		Reports:            reports,
		BirthdayWindowDays: a.cfg.Report.BirthdayWindowDays,
		Log:                a.log.Named("http"),
	})

	go func() {
		a.log.Info().Str("addr", a.cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		if err := srv.Listen(a.cfg.HTTP.Addr()); err != nil {
			a.log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.ShutdownWithContext(shutdownCtx); err != nil {
		a.log.Error().Err(err).Msg("apagado del servidor")
	}

	a.log.Info().Msg("aplicación detenida")
	return nil
}
