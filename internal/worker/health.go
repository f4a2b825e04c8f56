package worker

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

type ReadinessDeps interface {
	Ping(ctx context.Context) error
}

type redisPinger struct {
	rdb redis.Cmdable
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.rdb.Ping(ctx).Err()
}

// RedisReadiness adapts a redis client to ReadinessDeps.
func RedisReadiness(rdb redis.Cmdable) ReadinessDeps {
	return redisPinger{rdb: rdb}
}

// HealthHandler serves /healthz, /readyz and /stats for the relay process.
func HealthHandler(r *Relay, deps ReadinessDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.Handle("/readyz", ReadyHandler(deps, func() bool { return !r.Ready() }))

	mux.HandleFunc("/stats", func(w http.ResponseWriter, _ *http.Request) {
		received, invalid := r.Counts()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]uint64{
			"received": received,
			"invalid":  invalid,
		})
	})

	return mux
}

func ReadyHandler(deps ReadinessDeps, notReady func() bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if notReady() {
			http.Error(w, "not subscribed", http.StatusServiceUnavailable)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := deps.Ping(ctx); err != nil {
			http.Error(w, "redis not ready", http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
}
