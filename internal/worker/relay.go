package worker

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/geocoder89/videomatch/internal/notifications"
	"github.com/redis/go-redis/v9"
)

// Relay consumes the per-visitor notification channels and hands each
// decoded toast to a sink, e.g. a push gateway or a log.
type Relay struct {
	rdb     *redis.Client
	pattern string
	sink    notifications.Notifier
	log     *slog.Logger

	received atomic.Uint64
	invalid  atomic.Uint64
	ready    atomic.Bool
}

func NewRelay(rdb *redis.Client, channelPrefix string, sink notifications.Notifier, log *slog.Logger) *Relay {
	if channelPrefix == "" {
		channelPrefix = notifications.DefaultChannelPrefix
	}
	if log == nil {
		log = slog.Default()
	}
	return &Relay{
		rdb:     rdb,
		pattern: channelPrefix + "*",
		sink:    sink,
		log:     log,
	}
}

func (r *Relay) Run(ctx context.Context) error {
	sub := r.rdb.PSubscribe(ctx, r.pattern)
	defer sub.Close()

	// wait for the subscription confirmation before reporting ready
	if _, err := sub.Receive(ctx); err != nil {
		return err
	}
	r.ready.Store(true)
	defer r.ready.Store(false)

	r.log.Info("relay subscribed", "pattern", r.pattern)

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			r.log.Info("relay received shutdown signal")
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			r.handle(ctx, msg)
		}
	}
}

func (r *Relay) handle(ctx context.Context, msg *redis.Message) {
	visitorID := strings.TrimPrefix(msg.Channel, strings.TrimSuffix(r.pattern, "*"))

	n, err := notifications.DecodeFor(visitorID, []byte(msg.Payload))
	if err != nil {
		r.invalid.Add(1)
		r.log.Warn("relay dropped invalid notification", "channel", msg.Channel, "err", err)
		return
	}

	r.received.Add(1)
	if err := r.sink.Notify(ctx, n); err != nil {
		r.log.Error("relay sink failed", "visitor_id", n.VisitorID, "err", err)
	}
}

func (r *Relay) Ready() bool {
	return r.ready.Load()
}

func (r *Relay) Counts() (received, invalid uint64) {
	return r.received.Load(), r.invalid.Load()
}
