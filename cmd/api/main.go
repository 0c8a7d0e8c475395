// Package main is the entry point for the ELD trip planner API server.
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
	"github.com/joho/godotenv"

	"github.com/pkordes/eld-planner/backend/internal/config"
	"github.com/pkordes/eld-planner/backend/internal/domain"
	"github.com/pkordes/eld-planner/backend/internal/geocode"
	"github.com/pkordes/eld-planner/backend/internal/handler"
	"github.com/pkordes/eld-planner/backend/internal/handler/gen"
	"github.com/pkordes/eld-planner/backend/internal/hos"
	"github.com/pkordes/eld-planner/backend/internal/middleware"
	"github.com/pkordes/eld-planner/backend/internal/repo"
	"github.com/pkordes/eld-planner/backend/internal/service"
	"github.com/pkordes/eld-planner/backend/migrations"
	"github.com/pkordes/eld-planner/backend/spec"
)

func main() {
	// --- Config -----------------------------------------------------------
	// A .env file is optional; real environment variables always win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("could not read .env file", "error", err)
	}
	cfg, err := config.Load()
	if err != nil {
		// Use the default logger before ours is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	// --- Database ---------------------------------------------------------
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(ctx); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	if cfg.RunMigrations {
		// goose works on database/sql; open a short-lived handle with the pool's settings.
		sqlDB := stdlib.OpenDB(*pool.Config().ConnConfig)
		err := migrations.Up(ctx, sqlDB, logger)
		sqlDB.Close()
		if err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
	}

	// --- Planning engine --------------------------------------------------
	rules, err := cfg.Rules()
	if err != nil {
		slog.Error("invalid planning rules", "error", err)
		os.Exit(1)
	}
	engine, err := hos.NewEngine(rules)
	if err != nil {
		slog.Error("failed to build planning engine", "error", err)
		os.Exit(1)
	}
	slog.Info("planning engine ready",
		"average_speed_mph", rules.AverageSpeedMPH,
		"fuel_interval_miles", rules.FuelIntervalMiles,
		"rest_status", rules.RestStatus,
		"home_terminal_tz", rules.Location.String(),
	)

	// --- Geocoding --------------------------------------------------------
	geocoder, closeGeocoder, err := newGeocoder(ctx, cfg, logger)
	if err != nil {
		slog.Error("failed to set up geocoding", "error", err)
		os.Exit(1)
	}
	defer closeGeocoder()

	// --- Services ---------------------------------------------------------
	trips := service.NewTripService(repo.NewTripRepo(pool), geocoder, engine, logger).
		WithDriverDefaults(domain.DriverInfo{
			CarrierName:   cfg.DefaultCarrierName,
			VehicleNumber: cfg.DefaultVehicleNumber,
		})

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → body limit.
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
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec.OpenAPI)
	})

	// gen.NewStrictHandlerWithOptions adapts our StrictServerInterface
	// implementation to the lower-level ServerInterface chi expects and
	// replaces the generated plain-text error replies with JSON ones.
	srvImpl := handler.NewServer(trips)
	strict := gen.NewStrictHandlerWithOptions(srvImpl, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  handler.RequestErrorHandler,
		ResponseErrorHandlerFunc: handler.ResponseErrorHandler(logger),
	})
	gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: handler.RequestErrorHandler,
	})

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	// WriteTimeout leaves room for geocoding retries on POST /trips.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// newGeocoder builds the resolver chain: the built-in gazetteer first, then
// OpenRouteService when an API key is configured, all behind the SQLite cache
// when GEOCODE_CACHE_PATH is set. The returned func releases the cache.
func newGeocoder(ctx context.Context, cfg config.Config, logger *slog.Logger) (geocode.Resolver, func(), error) {
	chain := geocode.Chain{geocode.NewStatic()}
	if cfg.ORSAPIKey != "" {
		chain = append(chain, geocode.NewORS(cfg.ORSBaseURL, cfg.ORSAPIKey, nil))
	} else {
		logger.Info("ORS_API_KEY not set; geocoding limited to the built-in gazetteer")
	}

	if cfg.GeocodeCachePath == "" {
		return chain, func() {}, nil
	}
	db, err := geocode.OpenCache(ctx, cfg.GeocodeCachePath)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("geocode cache opened", "path", cfg.GeocodeCachePath)
	return geocode.NewCached(db, chain, logger), func() { db.Close() }, nil
}
