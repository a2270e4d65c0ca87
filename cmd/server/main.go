package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/grachmannico95/gig-earnings/internal/config"
	"github.com/grachmannico95/gig-earnings/internal/earnings"
	"github.com/grachmannico95/gig-earnings/internal/handler"
	"github.com/grachmannico95/gig-earnings/internal/server"
	"github.com/grachmannico95/gig-earnings/internal/service"
	"github.com/grachmannico95/gig-earnings/internal/storage"
	"github.com/grachmannico95/gig-earnings/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer log.Sync()

	ctx := context.Background()
	log.Info(ctx, "Starting application")

	order, err := earnings.ParseDateOrder(cfg.Earnings.DateFallbackOrder)
	if err != nil {
		log.Fatal(ctx, "Invalid date fallback order",
			"error", err,
		)
	}

	repo := storage.NewMemoryStore(cfg.Storage.MaxUploads)
	log.Info(ctx, "Repository initialized",
		"max_uploads", cfg.Storage.MaxUploads,
	)

	connectService := service.NewConnectService(log)
	studyService := service.NewStudyService(repo, service.StudyConfig{
		DefaultConversionRate: cfg.Earnings.ConversionRate,
		Dates: earnings.DateMatcher{
			Order:    order,
			Location: cfg.Earnings.Location(),
		},
	}, log)
	log.Info(ctx, "Services initialized",
		"conversion_rate", cfg.Earnings.ConversionRate,
		"date_order", order.String(),
	)

	srv := server.New(
		cfg,
		log,
		handler.NewConnectHandler(connectService, log),
		handler.NewStudyHandler(studyService, log),
		handler.NewHealthHandler(),
	)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal(ctx, "Failed to start HTTP server",
				"error", err,
			)
		}
	}()

	log.Info(ctx, "Application started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "HTTP server shutdown error",
			"error", err,
		)
	}

	log.Info(ctx, "Application stopped gracefully")
}
