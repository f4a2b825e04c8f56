package http

import (
	"log/slog"

	"github.com/geocoder89/videomatch/internal/auth"
	"github.com/geocoder89/videomatch/internal/catalog"
	"github.com/geocoder89/videomatch/internal/config"
	"github.com/geocoder89/videomatch/internal/http/handlers"
	"github.com/geocoder89/videomatch/internal/http/middlewares"
	"github.com/geocoder89/videomatch/internal/notifications"
	"github.com/geocoder89/videomatch/internal/observability"
	"github.com/geocoder89/videomatch/internal/selections"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const maxBodyBytes = 1 << 20

type Deps struct {
	Catalog    *catalog.Service
	Selections *selections.Service
	Inbox      *notifications.Inbox
	Tokens     *auth.Manager
	// Store is pinged by /readyz; nil skips the check.
	Store handlers.Pinger
	// Ready reports background workers; nil means always ready.
	Ready    func() bool
	Prom     *observability.Prom
	Gatherer prometheus.Gatherer
}

func NewRouter(log *slog.Logger, cfg config.Config, deps Deps) *gin.Engine {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(gin.Recovery())
	if cfg.OTelEnabled {
		r.Use(otelgin.Middleware("videomatch-api"))
	}
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(log))
	if deps.Prom != nil {
		r.Use(deps.Prom.GinHandleMiddleware())
	}
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middlewares.MaxBodyBytes(maxBodyBytes))

	health := handlers.NewHealthHandler(deps.Store, deps.Ready)
	r.GET("/healthz", health.Healthz)
	r.GET("/readyz", health.Readyz)

	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	limiter := middlewares.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	authMW := middlewares.NewAuthMiddleware(deps.Tokens)

	eventsHandler := handlers.NewEventsHandler(deps.Catalog, cfg.PublicBaseURL)
	visitorsHandler := handlers.NewVisitorsHandler(deps.Tokens)
	selectionsHandler := handlers.NewSelectionsHandler(deps.Selections, deps.Catalog.Catalog(), deps.Inbox)

	public := r.Group("/", limiter.RateLimiterMiddleware(middlewares.KeyByIP))
	{
		public.GET("/events", eventsHandler.ListEvents)
		public.GET("/events/today", eventsHandler.Today)
		public.GET("/events/day/:day", eventsHandler.ByDay)
		public.GET("/events/featured", eventsHandler.Featured)
		public.GET("/events/category/:category", eventsHandler.ByCategory)
		public.GET("/events/search", eventsHandler.Search)
		public.GET("/events/stats", eventsHandler.Stats)
		public.GET("/events/upcoming", eventsHandler.Upcoming)
		public.GET("/events/categories", eventsHandler.Categories)
		public.GET("/events/:id", eventsHandler.GetEventByID)
		public.GET("/events/:id/share", eventsHandler.Share)

		public.POST("/visitors", visitorsHandler.Create)
	}

	visitor := r.Group("/", authMW.RequireVisitor(), limiter.RateLimiterMiddleware(middlewares.KeyByVisitorOrIP))
	{
		visitor.POST("/events/:id/join", selectionsHandler.Join)
		visitor.POST("/events/:id/save", selectionsHandler.ToggleSave)
		visitor.GET("/me/events", selectionsHandler.MyEvents)
		visitor.GET("/me/notifications", selectionsHandler.Notifications)
	}

	return r
}
