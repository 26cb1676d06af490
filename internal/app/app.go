package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"roulette_backend/internal/config"
	"roulette_backend/internal/config/env"
	"roulette_backend/internal/lib/logger/sl"
	"roulette_backend/internal/repository"
	"syscall"
	"time"

	"golang.org/x/exp/slog"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider(log *slog.Logger) {
	s.ServiceProvider = newServiceProvider(log)
}

func (s *App) Run() error {
	loadErr := config.Load(".env")

	logCfg, err := env.NewLoggerConfig()
	if err != nil {
		return err
	}
	log := setupLogger(logCfg.Env())
	if loadErr != nil {
		log.Warn("error loading .env file", sl.Err(loadErr))
	}
	log.Info("starting roulette backend", slog.String("env", logCfg.Env()))
	log.Debug("debug messages are enabled")

	s.initServiceProvider(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sp := s.ServiceProvider
	defer sp.Close()

	if err := repository.Migrate(ctx, sp.DBClient(ctx)); err != nil {
		return err
	}

	adminCfg := sp.AdminCfg()
	if err := sp.AuthService(ctx).EnsureAdmin(ctx, adminCfg.Login(), adminCfg.Password()); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         sp.HTTPCfg().Address(),
		Handler:      sp.Router(ctx),
		ReadTimeout:  sp.HTTPCfg().Timeout(),
		WriteTimeout: sp.HTTPCfg().Timeout(),
		IdleTimeout:  sp.HTTPCfg().IdleTimeout(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server started", slog.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		log.Error("server failed", sl.Err(err))
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", sl.Err(err))
		return err
	}

	log.Info("server stopped")
	return nil
}

func setupLogger(envName string) *slog.Logger {
	var log *slog.Logger

	switch envName {
	case env.EnvDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case env.EnvProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	return log
}
