// @title Procuraduría - Consulta de Legajos API
// @version 1.0
// @description Búsqueda de legajos y consulta de su historial de movimientos (solo lectura).
// @BasePath /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"procuraduria/internal/app"
	"procuraduria/internal/platform/config"
	"procuraduria/internal/platform/errs"
	"procuraduria/internal/platform/logger"
	"procuraduria/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	defer func() { _ = log.Sync() }()

	rt, err := app.Open(cfg, log)
	if err != nil {
		// Sin conexión no hay nada que atender.
		log.Error("startup failed", map[string]any{
			"kind": errs.KindOf(err).String(),
			"err":  err,
		})
		_ = log.Sync()
		os.Exit(1)
	}
	defer func() { _ = rt.Close() }()

	r := router.NewRouter(router.Options{
		Services: rt.Services,
		Layout:   rt.Layout,
		Logger:   log,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.DBQueryTimeout + 10*time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Addr()})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"err": err})
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", map[string]any{"err": err})
	}
	log.Info("server stopped", nil)
}
