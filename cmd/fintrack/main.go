package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/sync/errgroup"

	"fintrack/internal/cache"
	"fintrack/internal/cli"
	apphttp "fintrack/internal/http"
	"fintrack/internal/ledger/memory"
	"fintrack/internal/log"
	"fintrack/internal/notify"
	"fintrack/internal/summary"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cli.LoadEnvFile()

	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		return err
	}
	logger := cli.SetupLogger(cfg, os.Stdout)

	store := memory.NewFromFiles(cfg.DataDir,
		memory.WithLogger(logger),
		memory.WithNotifier(notify.NewLogNotifier(logger)))
	logger.Info("Initialized transaction store", log.FieldCount, store.Len(), "data_dir", cfg.DataDir)

	engine := summary.NewEngine(cfg.CacheSize, cfg.CacheTTL, logger)
	caches := cache.NewManager(logger)
	caches.Register(engine.Caches()...)

	srv := apphttp.NewServer(":"+cfg.Port, store, engine, apphttp.Options{
		RecentLimit:   cfg.RecentLimit,
		TopCategories: cfg.TopCategories,
		RateLimitRPM:  cfg.RateLimitRPM,
		Logger:        logger,
	})

	ctx, stop := cli.SignalContext(context.Background())
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting fintrack server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server on port %s: %w", cfg.Port, err)
		}
		return nil
	})

	g.Go(func() error {
		return caches.Run(ctx, cfg.CacheCleanupInterval)
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutdown signal received", log.FieldOperation, log.OpShutdown)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", log.FieldError, err)
		return err
	}
	logger.Info("Server stopped gracefully")
	return nil
}
