package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"workforce/internal/platform/config"
	"workforce/internal/platform/db"
	"workforce/internal/platform/metrics"
	"workforce/internal/store"
	"workforce/internal/transport/http/api"
	reportshandler "workforce/internal/transport/http/handlers/reports"
	"workforce/internal/transport/http/middleware"
)

// Run wires the snapshot source, middleware and report routes, then
// serves until the process exits.
func Run(cfg config.Config) {
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	var source store.Source
	ping := func(ctx context.Context) error { return nil }
	if cfg.DatabaseURL != "" {
		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			log.Fatalf("db connect failed: %v", err)
		}
		defer pool.Close()
		source = store.NewPostgres(pool)
		ping = pool.Ping
	} else {
		sqlite, err := store.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("sqlite open failed: %v", err)
		}
		defer sqlite.Close()
		source = sqlite
		ping = sqlite.DB.PingContext
	}

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.New()
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(chimiddleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := ping(ctx); err != nil {
			http.Error(w, "source not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		reportsHandler := reportshandler.NewHandler(source, collector, cfg.SnapshotTimeout)
		reportsHandler.RegisterRoutes(r)

		if collector != nil {
			r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
				api.Success(w, collector.Snapshot(), middleware.GetRequestID(req.Context()))
			})
		}
	})

	log.Printf("workforce analytics server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
