package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dogmatch/internal/catalog"
	"dogmatch/internal/config"
	"dogmatch/internal/http/server"
	"dogmatch/internal/logger"
	"dogmatch/internal/services/auth"
	"dogmatch/internal/services/session"
	"dogmatch/internal/storage/inmemory"

	"golang.org/x/sync/errgroup"
)

const (
	sweepInterval   = time.Minute
	shutdownTimeout = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	if cfg.GeneratedSecret {
		log.Warn().Msg("Using auto-generated JWT secret key. For production, set JWT_SECRET_KEY environment variable.")
	}

	store := inmemory.NewInMemory()
	defer store.CloseAll()

	// у каждой сессии свой клиент и свой cookie jar с токеном каталога
	newCatalog := func() (auth.RemoteCatalog, error) {
		return catalog.NewClient(cfg.CatalogBaseURL, cfg.RequestTimeout, log)
	}

	authService, err := auth.NewAuthentication(store, newCatalog, cfg.JWTSecretKey, cfg.SessionExpire,
		session.Options{RequestTimeout: cfg.RequestTimeout, DetailConcurrency: cfg.DetailConcurrency}, log)
	if err != nil {
		return fmt.Errorf("failed to init auth: %w", err)
	}

	srv, err := server.NewServer(log, *cfg, authService)
	if err != nil {
		return fmt.Errorf("failed to init server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		store.RunSweeper(gctx, sweepInterval, log)
		return nil
	})

	g.Go(func() error {
		return srv.Start(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("server stopped with error")
		return err
	}

	log.Info().Msg("Server stopped")
	return nil
}
