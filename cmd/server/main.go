// Command server runs the farmgate registration API.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"farmgate/internal/jwtauth"
	"farmgate/internal/platform/config"
	"farmgate/internal/platform/httpserver"
	"farmgate/internal/platform/logger"
	"farmgate/internal/platform/metrics"
	"farmgate/internal/platform/middleware"
	platformredis "farmgate/internal/platform/redis"
	"farmgate/internal/registration/handler"
	"farmgate/internal/registration/refcache"
	"farmgate/internal/registration/service"
	"farmgate/internal/registration/store"
	plotsync "farmgate/internal/registration/sync"
	"farmgate/pkg/platform/audit"
	"farmgate/pkg/platform/audit/publisher"
	auditmemory "farmgate/pkg/platform/audit/store/memory"
	"farmgate/pkg/platform/audit/worker"
)

const shutdownGrace = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stores, cleanup, err := buildStores(cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
		log.Info("reference cache enabled")
	}

	g, ctx := errgroup.WithContext(ctx)

	auditPublisher, auditCleanup, err := buildAudit(ctx, g, cfg, log)
	if err != nil {
		return err
	}
	defer auditCleanup()

	fanout := plotsync.New(plotsync.TargetsFromConfig(cfg.SyncTargets),
		plotsync.WithLogger(log),
		plotsync.WithMetrics(m))

	svc := service.New(stores,
		service.WithLogger(log),
		service.WithMetrics(m),
		service.WithAuditPublisher(auditPublisher),
		service.WithFanout(fanout),
		service.WithRefCache(refcache.New(redisClient, log)),
		service.WithCountryDialPrefix(cfg.CountryDialPrefix))

	router := buildRouter(cfg, log, m, svc, redisClient)
	srv := httpserver.New(cfg.Addr, router)

	g.Go(func() error {
		log.Info("server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("server stopped")
	return nil
}

// buildStores opens Postgres when configured, otherwise serves from memory
// for local development.
func buildStores(cfg config.Server, log *slog.Logger) (*store.Stores, func(), error) {
	if cfg.DatabaseURL == "" {
		log.Warn("DATABASE_URL not set, using in-memory stores")
		return store.NewInMemoryStores().Bundle(), func() {}, nil
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}

	return store.NewPostgresStores(db).Bundle(), func() { _ = db.Close() }, nil
}

// buildAudit wires the Kafka publisher when brokers are configured, falling
// back to the in-process channel worker with an in-memory store.
func buildAudit(ctx context.Context, g *errgroup.Group, cfg config.Server, log *slog.Logger) (audit.Publisher, func(), error) {
	if len(cfg.KafkaBrokers) > 0 {
		pub, err := publisher.NewKafkaPublisher(ctx, cfg.KafkaBrokers, cfg.AuditTopic, log)
		if err != nil {
			return nil, nil, fmt.Errorf("kafka audit publisher: %w", err)
		}
		cleanup := func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
			defer cancel()
			if err := pub.Close(closeCtx); err != nil {
				log.Warn("audit publisher close failed", "error", err)
			}
		}
		log.Info("audit events shipping to kafka", "brokers", cfg.KafkaBrokers)
		return pub, cleanup, nil
	}

	inbox := make(chan audit.Event, 256)
	w := worker.NewWorker(auditmemory.New(), inbox)
	g.Go(func() error { return w.Run(ctx) })
	return publisher.NewChannelPublisher(inbox, log), func() {}, nil
}

func buildRouter(cfg config.Server, log *slog.Logger, m *metrics.Metrics, svc *service.Service, redisClient *platformredis.Client) http.Handler {
	validator := jwtauth.NewValidator(cfg.JWTSigningKey)
	h := handler.New(svc, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(middleware.ClientMetadata)
	r.Use(middleware.LatencyMiddleware(m))
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if redisClient != nil {
			if err := redisClient.Health(req.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(validator, log))
		r.Use(middleware.ContentTypeJSON)
		r.Mount("/api/v1", h.Routes())
	})

	return r
}
