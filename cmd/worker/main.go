// Command worker relays visitor notifications published on redis to a sink.
// Today the sink is the structured log; a push gateway slots in behind the
// same Notifier interface.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/geocoder89/videomatch/internal/config"
	"github.com/geocoder89/videomatch/internal/notifications"
	"github.com/geocoder89/videomatch/internal/observability"
	"github.com/geocoder89/videomatch/internal/queue/redisclient"
	"github.com/geocoder89/videomatch/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		observability.NewLogger("prod").Error("config", "err", err)
		os.Exit(1)
	}

	log := observability.NewLogger(cfg.Env).With("component", "relay")

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	rdb, err := redisclient.New(ctx, redisclient.Config{
		URL:      cfg.RedisURL,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Error("redis connect failed", "err", err)
		os.Exit(1)
	}
	defer rdb.Close()

	relay := worker.NewRelay(rdb, "", notifications.NewLogNotifier(log), log)

	healthSrv := &http.Server{
		Addr:              ":" + os.Getenv("WORKER_HEALTH_PORT"),
		Handler:           worker.HealthHandler(relay, worker.RedisReadiness(rdb)),
		ReadHeaderTimeout: 5 * time.Second,
	}
	if healthSrv.Addr == ":" {
		healthSrv.Addr = ":8081"
	}

	go func() {
		if err := healthSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("health server failed", "err", err)
		}
	}()

	log.Info("relay has started", "health_addr", healthSrv.Addr)

	if err := relay.Run(ctx); err != nil {
		log.Error("relay stopped with error", "err", err)
	}

	shutdownCtx, cancel := config.WithTimeout(5 * time.Second)
	defer cancel()
	_ = healthSrv.Shutdown(shutdownCtx)

	log.Info("relay shutdown complete")
}
