// Command server exposes the Pico y Placa predictor over HTTP, with metrics
// and health endpoints for operating it as a small service.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"picoplaca/internal/holiday"
	"picoplaca/internal/platform/config"
	"picoplaca/internal/platform/httpserver"
	"picoplaca/internal/platform/logger"
	"picoplaca/internal/prediction"
	predictionHandler "picoplaca/internal/prediction/handler"
	predictionMetrics "picoplaca/internal/prediction/metrics"
	"picoplaca/pkg/platform/middleware/requestid"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	opts := []prediction.Option{
		prediction.WithLogger(log),
		prediction.WithMetrics(predictionMetrics.New()),
	}

	// The online oracle is optional at the process level: requests asking
	// for online mode fail with a clear error when no key is configured.
	if cfg.HolidaysAPIKey != "" {
		online, err := holiday.NewOnline(cfg.HolidaysAPIKey,
			holiday.WithHTTPClient(&http.Client{Timeout: cfg.LookupTimeout}),
			holiday.WithRetries(cfg.LookupRetries),
			holiday.WithLogger(log),
		)
		if err != nil {
			log.Error("online holiday oracle init failed", "error", err)
			os.Exit(1)
		}
		opts = append(opts, prediction.WithOnline(online))
	}

	svc, err := prediction.New(holiday.NewOffline(), opts...)
	if err != nil {
		log.Error("prediction service init failed", "error", err)
		os.Exit(1)
	}

	router := chi.NewRouter()
	router.Use(requestid.Middleware)
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())
	predictionHandler.New(svc, log).Register(router)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting picoplaca server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
