package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/geocoder89/videomatch/internal/notifications"
	"github.com/geocoder89/videomatch/internal/observability"
)

var ErrQueueFull = errors.New("notification queue full")

type Config struct {
	Concurrency int
	QueueSize   int
	MaxAttempts int
	BaseBackoff time.Duration
	MaxBackoff  time.Duration
	// SendTimeout bounds a single delivery attempt.
	SendTimeout time.Duration
}

// job carries the targets still owed this notification; a retry only goes
// to the ones that failed.
type job struct {
	n       notifications.Notification
	attempt int
	targets []notifications.Notifier
}

// Worker delivers notifications off the request path. Delayed and retried
// deliveries are parked on timers and re-enter the queue when they fire.
type Worker struct {
	cfg     Config
	targets []notifications.Notifier
	log     *slog.Logger
	metrics *observability.DispatchMetrics

	queue chan job

	mu      sync.Mutex
	timers  map[*time.Timer]struct{}
	stopped bool

	readyMu sync.RWMutex
	ready   bool
}

func New(cfg Config, target notifications.Notifier, log *slog.Logger, metrics *observability.DispatchMetrics) *Worker {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 2
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = 3 * time.Second
	}
	if log == nil {
		log = slog.Default()
	}
	if metrics == nil {
		metrics = observability.NewDispatchMetrics()
	}

	return &Worker{
		cfg:     cfg,
		targets: flatten(target),
		log:     log,
		metrics: metrics,
		queue:   make(chan job, cfg.QueueSize),
		timers:  make(map[*time.Timer]struct{}),
	}
}

// flatten splits a Fanout so every member is tracked on its own.
func flatten(target notifications.Notifier) []notifications.Notifier {
	fan, ok := target.(notifications.Fanout)
	if !ok {
		return []notifications.Notifier{target}
	}

	var out []notifications.Notifier
	for _, t := range fan {
		out = append(out, flatten(t)...)
	}
	return out
}

// Notify queues n for immediate delivery.
func (w *Worker) Notify(_ context.Context, n notifications.Notification) error {
	return w.enqueue(job{n: n, targets: w.targets})
}

// Schedule queues n once delay has elapsed. Fire-and-forget: a full queue
// is logged and counted, never returned to the caller.
func (w *Worker) Schedule(n notifications.Notification, delay time.Duration) {
	w.after(job{n: n, targets: w.targets}, delay)
}

func (w *Worker) after(j job, delay time.Duration) {
	if delay <= 0 {
		if err := w.enqueue(j); err != nil {
			w.log.Warn("notification dropped", "visitor_id", j.n.VisitorID, "err", err)
		}
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		w.metrics.IncDropped()
		return
	}

	var t *time.Timer
	t = time.AfterFunc(delay, func() {
		w.mu.Lock()
		delete(w.timers, t)
		w.mu.Unlock()

		if err := w.enqueue(j); err != nil {
			w.log.Warn("notification dropped", "visitor_id", j.n.VisitorID, "err", err)
		}
	})
	w.timers[t] = struct{}{}
}

func (w *Worker) enqueue(j job) error {
	w.mu.Lock()
	stopped := w.stopped
	w.mu.Unlock()

	if stopped {
		w.metrics.IncDropped()
		return ErrQueueFull
	}

	select {
	case w.queue <- j:
		w.metrics.IncQueued()
		return nil
	default:
		w.metrics.IncDropped()
		return ErrQueueFull
	}
}

// Run processes the queue until ctx is cancelled. Pending timers are
// stopped on shutdown.
func (w *Worker) Run(ctx context.Context) error {
	w.setReady(true)
	w.log.Info("notification worker started", "concurrency", w.cfg.Concurrency)

	var wg sync.WaitGroup
	for i := 0; i < w.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j := <-w.queue:
					w.process(ctx, j)
				}
			}
		}()
	}

	<-ctx.Done()
	w.setReady(false)
	w.stop()
	wg.Wait()

	w.log.Info("notification worker stopped")
	return nil
}

func (w *Worker) stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.stopped = true
	for t := range w.timers {
		if t.Stop() {
			w.metrics.IncDropped()
		}
		delete(w.timers, t)
	}
}

func (w *Worker) process(ctx context.Context, j job) {
	w.metrics.IncClaimed()
	start := time.Now()

	var (
		failed []notifications.Notifier
		errs   []error
	)
	for _, target := range j.targets {
		sendCtx, cancel := context.WithTimeout(ctx, w.cfg.SendTimeout)
		err := target.Notify(sendCtx, j.n)
		cancel()

		if err != nil {
			failed = append(failed, target)
			errs = append(errs, err)
		}
	}

	w.metrics.ObserveDuration(time.Since(start))

	if len(failed) == 0 {
		w.metrics.IncDone()
		return
	}
	err := errors.Join(errs...)

	w.metrics.IncFailed()

	if ctx.Err() != nil {
		return
	}

	if j.attempt+1 >= w.cfg.MaxAttempts {
		w.metrics.IncDeadLettered()
		w.log.Error("notification delivery gave up",
			"visitor_id", j.n.VisitorID,
			"attempts", j.attempt+1,
			"err", err,
		)
		return
	}

	delay := ExponentialBackoff(j.attempt, w.cfg.BaseBackoff, w.cfg.MaxBackoff)
	w.metrics.IncRetried()
	w.log.Warn("notification delivery failed, retrying",
		"visitor_id", j.n.VisitorID,
		"attempt", j.attempt+1,
		"retry_in", delay.String(),
		"pending_targets", len(failed),
		"err", err,
	)

	w.after(job{n: j.n, attempt: j.attempt + 1, targets: failed}, delay)
}

func (w *Worker) setReady(v bool) {
	w.readyMu.Lock()
	w.ready = v
	w.readyMu.Unlock()
}

func (w *Worker) Ready() bool {
	w.readyMu.RLock()
	defer w.readyMu.RUnlock()
	return w.ready
}

func (w *Worker) Metrics() *observability.DispatchMetrics {
	return w.metrics
}
