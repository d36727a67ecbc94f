// Package main starts the HTTP server of the michango service.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jkimaro/michango-system/internal/config"
	"github.com/jkimaro/michango-system/internal/handler"
	"github.com/jkimaro/michango-system/internal/middleware"
	"github.com/jkimaro/michango-system/internal/repository"
	"github.com/jkimaro/michango-system/internal/service"
	"github.com/jkimaro/michango-system/internal/session"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sugar := logger.Sugar()

	cfg, err := config.Parse()
	if err != nil {
		sugar.Fatalw("configuration error", "error", err.Error())
	}

	repo := repository.NewMemoryRepository()
	if cfg.SeedDemoUser {
		repo.Seed()
		sugar.Infow("demo user seeded", "phone", "255123456789")
	}

	sessions := session.NewFileStore(cfg.SessionFile)

	svc := service.NewService(repo, sessions, service.Options{
		SettlementDelay: cfg.SettlementDelay,
		ReportDelay:     cfg.ReportDelay,
		SuccessRate:     cfg.SuccessRate,
	})
	defer svc.Close()

	gate := middleware.NewSessionGate(svc)
	h := handler.NewHandler(svc, logger, gate)

	r := h.SetupRouter()

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sugar.Infow("starting michango server", "addr", cfg.RunAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		sugar.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		sugar.Info("server stopped gracefully")
		return nil
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("application terminated with error", "error", err)
	}
}
