package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tendant/presigned-gateway/pkg/gateway"
	"github.com/tendant/presigned-gateway/pkg/gateway/api"
	"github.com/tendant/presigned-gateway/pkg/gateway/config"
	"github.com/tendant/presigned-gateway/pkg/gateway/metrics"
	s3storage "github.com/tendant/presigned-gateway/pkg/gateway/storage/s3"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "err", err)
		os.Exit(1)
	}

	store, err := s3storage.New(s3storage.Config{
		Endpoint:        cfg.S3.Endpoint,
		Region:          cfg.S3.Region,
		AccessKeyID:     cfg.S3.AccessKeyID,
		SecretAccessKey: cfg.S3.SecretAccessKey,
		UsePathStyle:    cfg.S3.UsePathStyle,
		PresignDuration: cfg.S3.PresignDuration,
	})
	if err != nil {
		slog.Error("Failed to initialize S3 store", "err", err)
		os.Exit(1)
	}

	svc, err := gateway.New(
		gateway.WithBlobStore(store),
		gateway.WithAllowedBuckets(cfg.BucketList()),
		gateway.WithAllowedOrigins(cfg.OriginList()),
	)
	if err != nil {
		slog.Error("Failed to create gateway service", "err", err)
		os.Exit(1)
	}

	metrics.Register()

	downloadHandler := api.NewDownloadHandler(svc, cfg.OriginList())

	r := chi.NewRouter()
	r.Use(api.RequestID)
	r.Use(api.Logger)
	r.Use(api.Recoverer(cfg.OriginList()))
	r.Use(chimiddleware.RealIP)

	r.Mount("/download", downloadHandler.Routes())
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.PlainText(w, r, http.StatusText(http.StatusOK))
	})
	r.Get("/healthz/ready", func(w http.ResponseWriter, r *http.Request) {
		render.PlainText(w, r, http.StatusText(http.StatusOK))
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
	}

	go func() {
		slog.Info("Server starting", "port", cfg.Port, "allowed_buckets", cfg.BucketList())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "err", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "err", err)
		os.Exit(1)
	}

	slog.Info("Server exiting")
}
