package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"banyan-data/internal/config"
	"banyan-data/internal/database"
	httpapi "banyan-data/internal/http"
	"banyan-data/internal/logger"
	"banyan-data/internal/repository"
	"banyan-data/internal/service"
)

func main() {
	cfg := config.Load()

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "banyan-data")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Postgres when reachable, otherwise in-memory stores so the portal
	// still runs in local development.
	var db *sql.DB
	var stores repository.Stores
	if cfg.DBEnabled {
		if d, err := database.NewPostgresDB(&cfg.Database); err == nil {
			db = d
			stores = repository.NewPostgresStores(db)
			log.Info("DB enabled for banyan-data")
		} else {
			log.Warn("DB enabled but connection failed, falling back to memory stores", zap.Error(err))
		}
	}
	if db == nil {
		stores = repository.NewMemoryStores()
	}

	var sheets *service.SheetsClient
	if cfg.Sheets.Enabled {
		sheets = service.NewSheetsClient(cfg.Sheets, log)
		log.Info("Sheets mirror enabled", zap.String("spreadsheet_id", cfg.Sheets.SpreadsheetID))
	}
	export := service.NewExportService(stores, sheets, log)

	var pusher service.SheetPusher
	if sheets != nil {
		pusher = export
	}
	forms := service.NewFormService(stores, pusher, log)
	auth := service.NewAuthService(stores.Users, cfg.Auth, log)

	mw := httpapi.NewAuthMiddleware(auth, log)
	router := httpapi.NewRouter(log)
	router.RegisterAuthRoutes(httpapi.NewAuthHandler(auth, log), mw)
	router.RegisterFormRoutes(httpapi.NewFormsHandler(forms, log), mw)
	router.RegisterExportRoutes(httpapi.NewExportHandler(export, log), mw)

	srv := service.NewServer(cfg.HTTP.Addr, router, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
	case err := <-errCh:
		log.Error("HTTP server stopped", zap.Error(err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Stop(shutdownCtx)
	_ = database.Close(db)
}
