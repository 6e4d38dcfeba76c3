package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Nomina-api/internal/interfaces/console"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Menú interactivo en la terminal",
	RunE:  runConsole,
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}

func runConsole(_ *cobra.Command, _ []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	session := console.NewSession(a.roster, os.Stdin, os.Stdout, console.Options{
		BirthdayWindowDays: a.cfg.Report.BirthdayWindowDays,
	})
	if err := session.Run(); err != nil {
		return err
	}
	a.log.Info().Msg("sesión finalizada")
	return nil
}
