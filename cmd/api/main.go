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

	"github.com/geocoder89/videomatch/internal/auth"
	"github.com/geocoder89/videomatch/internal/catalog"
	"github.com/geocoder89/videomatch/internal/config"
	"github.com/geocoder89/videomatch/internal/db"
	httpx "github.com/geocoder89/videomatch/internal/http"
	"github.com/geocoder89/videomatch/internal/http/handlers"
	"github.com/geocoder89/videomatch/internal/notifications"
	"github.com/geocoder89/videomatch/internal/observability"
	"github.com/geocoder89/videomatch/internal/queue/redisclient"
	"github.com/geocoder89/videomatch/internal/queue/worker"
	"github.com/geocoder89/videomatch/internal/repo/memory"
	"github.com/geocoder89/videomatch/internal/repo/postgres"
	"github.com/geocoder89/videomatch/internal/repo/redisrepo"
	"github.com/geocoder89/videomatch/internal/selections"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
)

type stateStore interface {
	selections.Store
	handlers.Pinger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}

	log := observability.NewLogger(cfg.Env)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("api stopped with error", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := observability.InitTracer(ctx, observability.TracingConfig{
		Enabled:     cfg.OTelEnabled,
		ServiceName: "videomatch-api",
		Env:         cfg.Env,
		Endpoint:    cfg.OTelEndpoint,
	})
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}
	defer func() {
		tctx, cancel := config.WithTimeout(5 * time.Second)
		defer cancel()
		_ = shutdownTracer(tctx)
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	prom := observability.NewProm(reg)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	// catalog dates are placed relative to the day the process starts
	events := catalog.New(catalog.Seed(time.Now().In(loc)))
	catalogSvc := catalog.NewService(events, catalog.Options{
		Location: loc,
		Latency:  cfg.QueryLatency,
		CacheTTL: cfg.QueryCacheTTL,
		Observer: prom,
	})

	var rdb *redis.Client
	if cfg.StoreBackend == "redis" || cfg.NotifyRedis {
		rdb, err = redisclient.New(ctx, redisclient.Config{
			URL:      cfg.RedisURL,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()
	}

	store, closeStore, err := openStore(ctx, cfg, rdb)
	if err != nil {
		return err
	}
	defer closeStore()

	inbox := notifications.NewInbox(notifications.InboxConfig{MaxAge: cfg.VisitorTokenTTL})
	targets := notifications.Fanout{inbox, notifications.NewLogNotifier(log)}
	if cfg.NotifyRedis {
		targets = append(targets, notifications.NewProtectedNotifier(
			notifications.NewRedisPublisher(rdb, ""),
			notifications.ProtectedNotifierConfig{},
		))
	}

	dispatchMetrics := observability.NewDispatchMetrics()
	if err := prom.RegisterDispatch(dispatchMetrics); err != nil {
		return fmt.Errorf("register dispatch metrics: %w", err)
	}

	dispatcher := worker.New(worker.Config{
		Concurrency: 4,
		MaxAttempts: 3,
		BaseBackoff: 200 * time.Millisecond,
		MaxBackoff:  5 * time.Second,
	}, targets, log.With("component", "notifications"), dispatchMetrics)

	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		_ = dispatcher.Run(ctx)
	}()

	selectionsSvc := selections.NewService(
		selections.WithObserver(store, cfg.StoreBackend, prom),
		events,
		dispatcher,
		log,
	)

	router := httpx.NewRouter(log, cfg, httpx.Deps{
		Catalog:    catalogSvc,
		Selections: selectionsSvc,
		Inbox:      inbox,
		Tokens:     auth.NewManager(cfg.VisitorTokenSecret, cfg.VisitorTokenTTL),
		Store:      store,
		Ready:      dispatcher.Ready,
		Prom:       prom,
		Gatherer:   reg,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Server starting",
			"port", cfg.Port,
			"env", cfg.Env,
			"store", cfg.StoreBackend,
			"events", events.Len(),
			"tz", loc.String(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}
	log.Info("server shutting down")

	shutdownCtx, cancel := config.WithTimeout(10 * time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "err", err)
	}

	stop()
	select {
	case <-workerDone:
		log.Info("shutdown complete")
	case <-time.After(2 * time.Second):
		log.Error("shutdown timed out")
	}
	return nil
}

func openStore(ctx context.Context, cfg config.Config, rdb *redis.Client) (stateStore, func(), error) {
	switch cfg.StoreBackend {
	case "redis":
		return redisrepo.NewStateStore(rdb, cfg.VisitorTokenTTL), func() {}, nil

	case "postgres":
		pool, err := db.NewPool(ctx, cfg.DBURL)
		if err != nil {
			return nil, nil, err
		}
		store := postgres.NewStateStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store, pool.Close, nil

	default:
		return memory.NewStateStore(), func() {}, nil
	}
}
