package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"plotdesk/internal/event"
	"plotdesk/internal/lead"
	leadhandler "plotdesk/internal/lead/handler"
	leadmetrics "plotdesk/internal/lead/metrics"
	"plotdesk/internal/notify"
	"plotdesk/internal/payment"
	"plotdesk/internal/payment/gateway"
	paymenthandler "plotdesk/internal/payment/handler"
	paymentmetrics "plotdesk/internal/payment/metrics"
	"plotdesk/internal/platform/config"
	"plotdesk/internal/platform/httpserver"
	"plotdesk/internal/platform/logger"
	"plotdesk/internal/platform/metrics"
	"plotdesk/internal/platform/middleware"
	platformredis "plotdesk/internal/platform/redis"
	"plotdesk/internal/project"
	projecthandler "plotdesk/internal/project/handler"
	projectmetrics "plotdesk/internal/project/metrics"
)

const (
	eventBufferSize = 256
	requestTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

// main wires dependencies and keeps the process lifecycle small. Business
// logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Persistence. Without a Postgres URL everything runs on memory stores,
	// which is enough for local development.
	var db *sql.DB
	if cfg.PostgresURL != "" {
		var err error
		db, err = sql.Open("postgres", cfg.PostgresURL)
		if err != nil {
			log.Error("failed to open postgres", "error", err)
			return
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			log.Error("postgres unreachable", "error", err)
			return
		}
	}

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		return
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Event pipeline: services emit into a buffered channel; the worker
	// persists to Kafka when brokers are configured, memory otherwise.
	var eventStore event.Store
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaStore, err := event.NewKafkaStore(cfg.Kafka)
		if err != nil {
			log.Error("failed to connect to kafka", "error", err)
			return
		}
		defer kafkaStore.Close()
		eventStore = kafkaStore
	} else {
		eventStore = event.NewMemoryStore()
	}
	publisher := event.NewChannelPublisher(eventBufferSize, log)
	worker := event.NewWorker(eventStore, publisher.Inbox(), log)

	sender := notify.NewSMTPSender(cfg.SMTP)

	var bookingStore payment.Store
	if db != nil {
		bookingStore = payment.NewPostgresStore(db)
	} else {
		bookingStore = payment.NewMemoryStore()
	}
	paymentService := payment.NewService(
		cfg.Razorpay.KeySecret,
		bookingStore,
		gateway.NewRazorpayClient(cfg.Razorpay),
		sender,
		publisher,
		log,
		paymentmetrics.New(),
	)

	var leadStore lead.Store
	if db != nil {
		leadStore = lead.NewPostgresStore(db)
	} else {
		leadStore = lead.NewMemoryStore()
	}
	leadService := lead.NewService(leadStore, sender, publisher, log, leadmetrics.New())

	// Catalog, with the Redis read-through cache when available.
	var projectStore project.Store
	if db != nil {
		projectStore = project.NewPostgresStore(db)
	} else {
		projectStore = project.NewMemoryStore()
	}
	if redisClient != nil {
		projectStore = project.NewCachedStore(projectStore, redisClient.Client,
			config.CatalogCacheTTL, log, projectmetrics.New())
	}
	projectService := project.NewService(projectStore, log)

	router := newRouter(cfg, log,
		paymenthandler.New(paymentService, log),
		leadhandler.New(leadService, log),
		projecthandler.New(projectService, log),
	)
	srv := httpserver.New(cfg.Addr, router)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return worker.Run(gCtx)
	})
	g.Go(func() error {
		log.Info("starting plotdesk", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("shutdown with error", "error", err)
		return
	}
	log.Info("shutdown complete")
}

func newRouter(
	cfg config.Config,
	log *slog.Logger,
	paymentHandler *paymenthandler.Handler,
	leadHandler *leadhandler.Handler,
	projectHandler *projecthandler.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.ClientMetadata)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Latency(metrics.New()))

	r.Get("/healthz", handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		paymentHandler.Register(r)
		leadHandler.Register(r)
		projectHandler.Register(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdminToken(cfg.AdminToken, cfg.AdminTokenHash, log))
			leadHandler.RegisterAdmin(r)
		})
	})

	return r
}

// handleHealthz reports process liveness.
func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
