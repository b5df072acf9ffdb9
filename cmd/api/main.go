// Package main is the entry point for the Abidjan Route API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"fmt"
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

	"github.com/pkordes/abidjan-route/internal/config"
	"github.com/pkordes/abidjan-route/internal/handler"
	"github.com/pkordes/abidjan-route/internal/middleware"
	"github.com/pkordes/abidjan-route/internal/repo"
	"github.com/pkordes/abidjan-route/internal/service"
	"github.com/pkordes/abidjan-route/migrations"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// --- Catalog ----------------------------------------------------------
	ctx := context.Background()
	locations, pois, closeCatalog, err := openCatalog(ctx, cfg)
	if err != nil {
		slog.Error("failed to open catalog", "source", cfg.CatalogSource, "error", err)
		os.Exit(1)
	}
	defer closeCatalog()

	// --- Services ---------------------------------------------------------
	poiSvc, err := service.NewPOIService(ctx, pois)
	if err != nil {
		slog.Error("failed to index points of interest", "error", err)
		os.Exit(1)
	}
	routeSvc := service.NewRouteService(locations, poiSvc, cfg.POIRadiusKm)
	server := handler.NewServer(
		logger,
		service.NewLocationService(locations),
		poiSvc,
		routeSvc,
		service.NewExportService(routeSvc),
	)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → body limit.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Mount("/", server.Routes())

	// --- HTTP Server ------------------------------------------------------
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
		slog.Info("server starting", "addr", srv.Addr, "catalog", cfg.CatalogSource)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// openCatalog returns the location and POI repos for cfg.CatalogSource and a
// func that releases any resources they hold.
func openCatalog(ctx context.Context, cfg config.Config) (repo.LocationRepo, repo.POIRepo, func(), error) {
	if cfg.CatalogSource != config.CatalogPostgres {
		c, err := repo.DefaultCatalog()
		if err != nil {
			return nil, nil, nil, err
		}
		slog.Info("static catalog loaded", "locations", len(c.Locations), "pois", len(c.POIs))
		return repo.NewStaticLocationRepo(c), repo.NewStaticPOIRepo(c), func() {}, nil
	}

	// pgxpool manages a pool of Postgres connections.
	// New() does not open connections immediately; the first query does.
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	// goose needs database/sql; borrow a handle backed by the same pool.
	db := stdlib.OpenDBFromPool(pool)
	results, err := migrations.Up(ctx, db)
	db.Close()
	if err != nil {
		pool.Close()
		return nil, nil, nil, err
	}
	slog.Info("database connection established", "migrations_applied", len(results))

	return repo.NewLocationRepo(pool), repo.NewPOIRepo(pool), pool.Close, nil
}
