package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/outreachai/outreach-ai-platform/internal/api/router"
	appconfig "github.com/outreachai/outreach-ai-platform/internal/config"
	"github.com/outreachai/outreach-ai-platform/internal/llm"
	"github.com/outreachai/outreach-ai-platform/internal/observability/metrics"
	"github.com/outreachai/outreach-ai-platform/internal/outreach"
	"github.com/outreachai/outreach-ai-platform/pkg/logging"
)

func main() {
	// Load .env when present; real deployments configure the environment.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting outreach-ai-platform API server",
		"env", cfg.Env,
		"port", cfg.Port,
		"provider", cfg.LLMProvider,
		"model", cfg.LLMModel,
	)

	registry := prometheus.NewRegistry()
	pipelineMetrics := metrics.NewPipelineMetrics(registry)

	factory := llm.NewProviderFactory(cfg.LLMProvider, cfg.OpenAIBaseURL)
	service := outreach.NewService(factory, cfg, logger, pipelineMetrics)
	handler := outreach.NewHandler(service, logger)

	r := router.New(&router.Config{
		Logger:             logger,
		OutreachHandler:    handler,
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute, // pipeline runs block on multiple model round trips
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
