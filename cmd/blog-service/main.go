package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pribylovaa/go-blog/internal/cache"
	"github.com/pribylovaa/go-blog/internal/config"
	"github.com/pribylovaa/go-blog/internal/pkg/redact"
	"github.com/pribylovaa/go-blog/internal/service"
	"github.com/pribylovaa/go-blog/internal/storage"
	"github.com/pribylovaa/go-blog/internal/storage/minio"
	"github.com/pribylovaa/go-blog/internal/storage/postgres"
	bloghttp "github.com/pribylovaa/go-blog/internal/transport/http"
	"github.com/pribylovaa/go-blog/internal/transport/http/handlers"
	"github.com/pribylovaa/go-blog/internal/transport/http/middleware"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file (overrides CONFIG_PATH env)")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting blog-service", "env", cfg.Env)

	// run владеет всеми ресурсами: выход по ошибке проходит через их defer-закрытие.
	if err := run(cfg, log); err != nil {
		log.Error("service_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	log.Info("service_stopped")
}

func run(cfg *config.Config, log *slog.Logger) error {
	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	log.Info("postgres_connecting", slog.String("dsn", redact.DSN(cfg.Postgres.URL)))

	dbCtx, dbCancel := context.WithTimeout(rootCtx, 10*time.Second)
	store, err := postgres.New(dbCtx, cfg.Postgres.URL)
	dbCancel()
	if err != nil {
		return fmt.Errorf("postgres connect: %w", err)
	}
	defer store.Close()
	log.Info("postgres_connected")

	// Обложки опциональны: без S3_ENDPOINT сервис работает, presign отвечает 503.
	var covers storage.CoverStorage
	if cfg.S3.Enabled() {
		log.Info("minio_connecting",
			slog.String("endpoint", cfg.S3.Endpoint),
			slog.String("root_user", redact.Key(cfg.S3.RootUser)),
		)

		s3Ctx, s3Cancel := context.WithTimeout(rootCtx, 10*time.Second)
		cs, err := minio.New(s3Ctx, cfg.S3, cfg.Cover)
		s3Cancel()
		if err != nil {
			return fmt.Errorf("minio connect: %w", err)
		}
		covers = cs
		log.Info("minio_connected", slog.String("bucket", cfg.S3.Bucket))
	} else {
		log.Warn("covers_disabled", slog.String("reason", "s3 endpoint is empty"))
	}

	c := cache.New(cache.Options{
		SweepInterval: cfg.Cache.SweepInterval,
		Registerer:    prometheus.DefaultRegisterer,
		Logger:        log,
	})
	defer c.Close()

	svc := service.New(store, covers, c, cfg)
	log.Info("service_initialized")

	apiHandler := bloghttp.NewRouter(handlers.New(svc), bloghttp.Options{
		Logger:   log,
		Timeout:  cfg.Timeouts.Request,
		BasePath: "/api",
		Metrics:  middleware.NewMetrics(prometheus.DefaultRegisterer),
	})

	var ready int32 // 0 — not ready; 1 — ready

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if atomic.LoadInt32(&ready) != 1 {
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			http.Error(w, "postgres unavailable", http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.Handle("/", apiHandler)

	httpAddr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", httpAddr)
	if err != nil {
		return fmt.Errorf("http listen %s: %w", httpAddr, err)
	}

	log.Info("http_listen_start", slog.String("addr", httpAddr))

	serveErrCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	atomic.StoreInt32(&ready, 1)
	log.Info("service_ready")

	var serveErr error
	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case serveErr = <-serveErrCh:
		if serveErr != nil {
			serveErr = fmt.Errorf("http serve: %w", serveErr)
		}
	}

	atomic.StoreInt32(&ready, 0)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Timeouts.Shutdown)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_shutdown_incomplete", slog.String("err", err.Error()))
	} else {
		log.Info("http_stopped")
	}

	return serveErr
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
