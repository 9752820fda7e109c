// Package main is the entry point for the Reisdagboek API server.
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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/MrAssie/reisdagboek/internal/config"
	"github.com/MrAssie/reisdagboek/internal/handler"
	"github.com/MrAssie/reisdagboek/internal/middleware"
	"github.com/MrAssie/reisdagboek/internal/places"
	"github.com/MrAssie/reisdagboek/internal/repo"
	"github.com/MrAssie/reisdagboek/internal/service"
	"github.com/MrAssie/reisdagboek/migrations"
	"github.com/MrAssie/reisdagboek/spec"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
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

	// --- Database ---------------------------------------------------------
	// pgxpool manages a pool of Postgres connections.
	// New() does not open connections immediately; the first query does.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// --- Migrations -------------------------------------------------------
	// Apply pending migrations on startup from the embedded FS. goose needs a
	// database/sql handle, so borrow one from the pool via the stdlib driver.
	if err := migrate(pool); err != nil {
		slog.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("migrations up to date")

	// --- Wiring -----------------------------------------------------------
	tripRepo := repo.NewTripRepo(pool)
	dayRepo := repo.NewDayRepo(pool)
	activityRepo := repo.NewActivityRepo(pool)
	budgetItemRepo := repo.NewBudgetItemRepo(pool)

	tripSvc := service.NewTripService(tripRepo, dayRepo, activityRepo)
	daySvc := service.NewDayService(tripRepo, dayRepo)
	activitySvc := service.NewActivityService(tripRepo, dayRepo, activityRepo)
	budgetSvc := service.NewBudgetService(tripRepo, budgetItemRepo)
	exportSvc := service.NewExportService(tripRepo, dayRepo, activityRepo)

	// The places client is optional: without an API key the search endpoint
	// answers 503 instead of proxying to Google.
	var placesClient handler.PlacesSearcher
	if cfg.GoogleMapsAPIKey != "" {
		placesClient = places.NewClient(cfg.GoogleMapsAPIKey)
	} else {
		slog.Warn("GOOGLE_MAPS_API_KEY not set; places search disabled")
	}

	api := handler.NewServer(tripSvc, daySvc, activitySvc, budgetSvc, exportSvc, placesClient, spec.OpenAPI)

	// --- Router -----------------------------------------------------------
	// Middleware order: RequestID → RealIP → SlogLogger → Recoverer → CORS →
	// MaxBodySize. RequestID generates a unique trace ID per request. RealIP
	// sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a
	// proxy). SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORS(cfg.CORSOrigins))
	r.Use(middleware.MaxBodySize(cfg.MaxBodyBytes))

	r.Mount("/", api.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
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

// migrate applies all pending migrations from the embedded FS.
func migrate(pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	_, err = provider.Up(context.Background())
	return err
}
