// Command procuraduria consulta legajos desde la terminal.
//
//	procuraduria buscar --abogado garcia --ultimo-mov
//	procuraduria ver 123 2024
package main

import (
	"fmt"
	"os"

	"procuraduria/internal/app"
	"procuraduria/internal/platform/config"
	"procuraduria/internal/platform/logger"

	"github.com/spf13/cobra"
)

// opener arma el runtime; en tests se reemplaza por uno en memoria.
type opener func() (*app.Runtime, logger.Logger, error)

func main() {
	if err := newRootCmd(openFromEnv).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(open opener) *cobra.Command {
	root := &cobra.Command{
		Use:          "procuraduria",
		Short:        "Consulta de legajos y su historial de movimientos",
		SilenceUsage: true,
	}

	root.AddCommand(newBuscarCmd(open))
	root.AddCommand(newVerCmd(open))
	return root
}

func openFromEnv() (*app.Runtime, logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
		Output: os.Stderr,
	})

	rt, err := app.Open(cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, nil, fmt.Errorf("no se pudo conectar: %w", err)
	}
	return rt, log, nil
}
