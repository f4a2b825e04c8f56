package worker

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/geocoder89/videomatch/internal/notifications"
	"github.com/redis/go-redis/v9"
)

type sinkFunc func(ctx context.Context, n notifications.Notification) error

func (f sinkFunc) Notify(ctx context.Context, n notifications.Notification) error { return f(ctx, n) }

func TestRelayHandle(t *testing.T) {
	var got []notifications.Notification
	r := NewRelay(nil, "", sinkFunc(func(_ context.Context, n notifications.Notification) error {
		got = append(got, n)
		return nil
	}), nil)

	r.handle(context.Background(), &redis.Message{
		Channel: "videomatch:notifications:v1",
		Payload: `{"visitorId":"v1","message":"Event saved to your favorites!","kind":"success","durationMs":3000}`,
	})
	r.handle(context.Background(), &redis.Message{
		Channel: "videomatch:notifications:v2",
		Payload: `{"message":"no visitor in body","kind":"info"}`,
	})
	r.handle(context.Background(), &redis.Message{
		Channel: "videomatch:notifications:v3",
		Payload: `not json`,
	})
	r.handle(context.Background(), &redis.Message{
		Channel: "videomatch:notifications:v4",
		Payload: `{"visitorId":"v4","message":"hi","kind":"warning"}`,
	})

	if len(got) != 2 {
		t.Fatalf("delivered %d", len(got))
	}
	if got[1].VisitorID != "v2" {
		t.Fatalf("visitor from channel=%q", got[1].VisitorID)
	}
	if received, invalid := r.Counts(); received != 2 || invalid != 2 {
		t.Fatalf("received=%d invalid=%d", received, invalid)
	}
}

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func TestReadyHandler(t *testing.T) {
	tests := []struct {
		name     string
		notReady bool
		pingErr  error
		status   int
	}{
		{"ready", false, nil, http.StatusOK},
		{"not subscribed", true, nil, http.StatusServiceUnavailable},
		{"redis down", false, errors.New("down"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := ReadyHandler(pinger{tt.pingErr}, func() bool { return tt.notReady })
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
			if w.Code != tt.status {
				t.Fatalf("status=%d want %d", w.Code, tt.status)
			}
		})
	}
}

func TestHealthHandlerStats(t *testing.T) {
	r := NewRelay(nil, "", sinkFunc(func(context.Context, notifications.Notification) error { return nil }), nil)
	h := HealthHandler(r, pinger{})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("relay not running yet, readyz=%d", w.Code)
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stats", nil))
	if w.Code != http.StatusOK || w.Body.String() != "{\"invalid\":0,\"received\":0}\n" {
		t.Fatalf("stats=%d %q", w.Code, w.Body.String())
	}
}
