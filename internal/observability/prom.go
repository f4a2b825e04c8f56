package observability

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "videomatch"

type Prom struct {
	RequestsTotal    *prometheus.CounterVec
	RequestsDuration *prometheus.HistogramVec
	InFlight         *prometheus.GaugeVec

	// catalog reads
	QueryDuration *prometheus.HistogramVec
	QueryCache    *prometheus.CounterVec

	// visitor state
	StoreDuration    *prometheus.HistogramVec
	StoreErrorsTotal *prometheus.CounterVec

	reg prometheus.Registerer
}

func NewProm(reg prometheus.Registerer) *Prom {
	p := &Prom{
		reg: reg,
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests processed",
			},
			[]string{"method", "route", "status"},
		),
		RequestsDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency distributions.",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"method", "route", "status"},
		),
		InFlight: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_in_flight_requests",
				Help:      "Current number of in-flight HTTP requests.",
			},
			[]string{"method", "route"},
		),
		QueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "catalog",
				Name:      "query_duration_seconds",
				Help:      "Catalog read latency by operation, including simulated latency.",
				Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"op", "status"},
		),
		QueryCache: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "catalog",
				Name:      "query_cache_total",
				Help:      "Query result cache lookups by result.",
			},
			[]string{"result"}, // hit|miss
		),
		StoreDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "store",
				Name:      "op_duration_seconds",
				Help:      "Visitor state store latency by backend and op.",
				Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.5, 1, 2},
			},
			[]string{"backend", "op", "status"},
		),
		StoreErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "store",
				Name:      "errors_total",
				Help:      "Visitor state store errors by backend, op and class.",
			},
			[]string{"backend", "op", "class"},
		),
	}
	reg.MustRegister(
		p.RequestsTotal, p.RequestsDuration, p.InFlight,
		p.QueryDuration, p.QueryCache,
		p.StoreDuration, p.StoreErrorsTotal,
	)

	return p
}

// ObserveQuery satisfies catalog.QueryObserver.
func (p *Prom) ObserveQuery(op string, cacheHit bool, err error, d time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	p.QueryDuration.WithLabelValues(op, status).Observe(d.Seconds())

	if op != "query" || err != nil {
		return
	}
	if cacheHit {
		p.QueryCache.WithLabelValues("hit").Inc()
	} else {
		p.QueryCache.WithLabelValues("miss").Inc()
	}
}

// RegisterDispatch exports the notification worker counters.
func (p *Prom) RegisterDispatch(m *DispatchMetrics) error {
	counter := func(name, help string, read func(DispatchSnapshot) uint64) prometheus.Collector {
		return prometheus.NewCounterFunc(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "notifications",
				Name:      name,
				Help:      help,
			},
			func() float64 { return float64(read(m.Snapshot())) },
		)
	}

	collectors := []prometheus.Collector{
		counter("queued_total", "Notifications accepted into the queue.", func(s DispatchSnapshot) uint64 { return s.Queued }),
		counter("dropped_total", "Notifications dropped on a full queue or shutdown.", func(s DispatchSnapshot) uint64 { return s.Dropped }),
		counter("delivered_total", "Notifications delivered.", func(s DispatchSnapshot) uint64 { return s.Done }),
		counter("failed_total", "Failed delivery attempts.", func(s DispatchSnapshot) uint64 { return s.Failed }),
		counter("retried_total", "Deliveries scheduled for retry.", func(s DispatchSnapshot) uint64 { return s.Retried }),
		counter("dead_lettered_total", "Notifications abandoned after the last attempt.", func(s DispatchSnapshot) uint64 { return s.DeadLettered }),
	}

	for _, c := range collectors {
		if err := p.reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}
	return nil
}

func (p *Prom) GinHandleMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		// route template is only available after routing; best effort
		route := ctx.FullPath()

		if route == "" {
			route = "unmatched"
		}

		method := ctx.Request.Method
		p.InFlight.WithLabelValues(method, route).Inc()
		defer p.InFlight.WithLabelValues(method, route).Dec()
		ctx.Next()

		status := strconv.Itoa(ctx.Writer.Status())
		secs := time.Since(start).Seconds()

		p.RequestsTotal.WithLabelValues(method, route, status).Inc()
		p.RequestsDuration.WithLabelValues(method, route, status).Observe(secs)
	}
}
