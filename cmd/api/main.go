// Package main is the entry point for the Wayfare API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tkramer/wayfare/backend/internal/assist"
	"github.com/tkramer/wayfare/backend/internal/config"
	"github.com/tkramer/wayfare/backend/internal/handler"
	"github.com/tkramer/wayfare/backend/internal/middleware"
	"github.com/tkramer/wayfare/backend/internal/repo"
	"github.com/tkramer/wayfare/backend/internal/service"
)

// maxBodySize caps request bodies at 1 MiB. The largest legitimate payload
// is a full trip document, which stays well under this.
const maxBodySize = 1 << 20

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger introduced in Go 1.21.
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Storage ----------------------------------------------------------
	// Trip data lives in JSON files under DataDir. NewFileKV creates the
	// directory if needed, so a fresh install works with zero setup.
	kv, err := repo.NewFileKV(cfg.DataDir)
	if err != nil {
		slog.Error("failed to open data directory", "dir", cfg.DataDir, "error", err)
		os.Exit(1)
	}
	slog.Info("data directory ready", "dir", cfg.DataDir)

	trips := repo.NewTripRepo(kv, logger)
	settings := repo.NewSettingsRepo(kv, logger)

	// --- Services ---------------------------------------------------------
	tripSvc := service.NewTripService(trips)
	scheduleSvc := service.NewScheduleService(trips)
	itemsSvc := service.NewItemsService(trips)
	exportSvc := service.NewExportService(trips)
	settingsSvc := service.NewSettingsService(settings)
	assistClient := assist.NewClient(cfg.AssistBaseURL, cfg.AssistAPIKey, cfg.AssistModel, cfg.AssistRPM)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID, RealIP, Logger, Recoverer,
	// CORS, MaxBodySize.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodySize))

	srvHandler := handler.NewServer(tripSvc, scheduleSvc, itemsSvc, exportSvc, settingsSvc, assistClient)
	r.Mount("/", srvHandler.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	// WriteTimeout is generous because assist endpoints wait on the model API.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
