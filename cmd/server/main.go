package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JoelHidalgo58/myapp-inv2/internal/config"
	"github.com/JoelHidalgo58/myapp-inv2/internal/notify"
	"github.com/JoelHidalgo58/myapp-inv2/internal/repository"
	"github.com/JoelHidalgo58/myapp-inv2/internal/router"
	"github.com/JoelHidalgo58/myapp-inv2/internal/state"
	"github.com/JoelHidalgo58/myapp-inv2/internal/store"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	fileStore := store.NewFileStore(cfg.DataDir, log.Logger)

	usuarioRepo := repository.NewUsuarioRepository(fileStore, log.Logger)
	productoRepo := repository.NewProductoRepository(fileStore, log.Logger)
	ventaRepo := repository.NewVentaRepository(fileStore, log.Logger)
	historialRepo := repository.NewHistorialRepository(fileStore, log.Logger)

	notificador := notify.NewLogNotificador(log.Logger)
	persister := state.NewPersister(log.Logger)

	ctrl := state.NewController(usuarioRepo, productoRepo, ventaRepo, historialRepo, notificador, persister, log.Logger)
	if err := ctrl.Cargar(context.Background(), cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("failed to load collections")
	}

	r := router.New(cfg, ctrl, log.Logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("inventory backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}

	// Flush pending collection writes after the HTTP server drains.
	ctrl.Cerrar()
	log.Info().Msg("server exited")
}
