// cmd/server/main.go
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rax2004/Workforcepro/internal/auth"
	"github.com/Rax2004/Workforcepro/internal/config"
	"github.com/Rax2004/Workforcepro/internal/geocode"
	"github.com/Rax2004/Workforcepro/internal/handlers"
	"github.com/Rax2004/Workforcepro/internal/logging"
	"github.com/Rax2004/Workforcepro/internal/middleware"
	"github.com/Rax2004/Workforcepro/internal/repo"
	"github.com/Rax2004/Workforcepro/internal/security"
	"github.com/Rax2004/Workforcepro/internal/session"
)

func main() {
	// --- Load config (config.yaml + env overrides) ---
	cfg := config.Load()

	// --- Logger ---
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format == "json")

	// Configure session cookie security (dev often needs Secure=false)
	auth.SetCookieSecurity(cfg.Security.Session.CookieSecure)
	auth.SetCookieSameSite(cfg.Security.Session.SameSite)

	// --- Background session sweeper ---
	interval := cfg.Security.Session.SweeperInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	go session.DefaultStore.StartSweeper(context.Background(), interval)

	// --- Connect to Postgres ---
	ctx := context.Background()
	slog.Debug("connecting to database")
	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		slog.Error("db connect error", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		slog.Error("db ping error", "err", err)
		os.Exit(1)
	}
	slog.Debug("database connection ready")

	r := repo.New(pool)

	// Static geocoder; job addresses fall back to the configured centre
	// when the form submits no coordinates.
	geocoder := geocode.NewStatic(cfg.Geocoder.DefaultLat, cfg.Geocoder.DefaultLng)

	// --- Router ---
	mux := chi.NewRouter()

	// Ensure request ID then log requests with slog
	mux.Use(middleware.RequestID(cfg.Security.RequestID.TrustHeader))
	mux.Use(middleware.EnrichLogger)
	mux.Use(middleware.SlogRequestLogger)
	// Enforce MFA enrollment if enabled
	mux.Use(middleware.MFAEnforce(r, cfg.Security.MFA.LocalRequired))
	if cfg.Security.RateLimit.Enabled {
		mux.Use(middleware.RateLimitWith(cfg.Security.RateLimit.RequestsPerMinute, cfg.Security.RateLimit.Burst, cfg.Security.RateLimit.TTL))
	}
	if cfg.Security.Denylist.Enabled {
		mux.Use(middleware.Denylist(security.Default))
	}

	// --- CORS middleware ---
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Frontend.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by browsers
	}))

	// Auth, jobs, workers, reports, time tracking, dashboard, admin
	handlers.RegisterRoutes(mux, r, geocoder)

	// Health root
	mux.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("OK"))
	})

	// --- Start server ---
	addr := cfg.HTTP.Addr
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}
	slog.Info("listening", "addr", addr, "base_url", cfg.BaseURL)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("server error", "err", err)
		os.Exit(1)
	}
}
