package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/geocoder89/videomatch/internal/catalog"
	"github.com/geocoder89/videomatch/internal/domain/event"
	"github.com/gin-gonic/gin"
)

// CatalogReader is satisfied by *catalog.Service.
type CatalogReader interface {
	Query(ctx context.Context, p catalog.Params) (catalog.Page, error)
	Get(ctx context.Context, id string) (event.Event, error)
	Today(ctx context.Context) ([]event.Event, error)
	ByDay(ctx context.Context, day string) ([]event.Event, error)
	Featured(ctx context.Context) ([]event.Event, error)
	ByCategory(ctx context.Context, category string) ([]event.Event, error)
	Search(ctx context.Context, q string) ([]event.Event, error)
	Upcoming(ctx context.Context, days int) ([]event.Event, error)
	Stats(ctx context.Context) (catalog.Stats, error)
	Categories(ctx context.Context) ([]event.Category, error)
	Now() time.Time
	Location() *time.Location
}

type EventsHandler struct {
	catalog CatalogReader
	baseURL string
}

func NewEventsHandler(c CatalogReader, publicBaseURL string) *EventsHandler {
	return &EventsHandler{catalog: c, baseURL: publicBaseURL}
}

type listEventsQuery struct {
	Q          string `form:"q"`
	Search     string `form:"search"`
	SearchIn   string `form:"searchIn"`
	Day        string `form:"day"`
	Date       string `form:"date"`
	DateFrom   string `form:"dateFrom"`
	DateTo     string `form:"dateTo"`
	DateRange  string `form:"dateRange"`
	Category   string `form:"category"`
	PriceRange string `form:"priceRange"`
	PriceMin   string `form:"priceMin"`
	PriceMax   string `form:"priceMax"`
	Featured   bool   `form:"featured"`
	SortBy     string `form:"sortBy"`
	SortOrder  string `form:"sortOrder"`
	Page       *int   `form:"page" binding:"omitempty,min=1"`
	Limit      *int   `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (q listEventsQuery) params() catalog.Params {
	p := catalog.Params{
		Search:       q.Search,
		SearchIn:     q.SearchIn,
		Day:          q.Day,
		Date:         q.Date,
		DateFrom:     q.DateFrom,
		DateTo:       q.DateTo,
		DateRange:    q.DateRange,
		Category:     q.Category,
		PriceRange:   q.PriceRange,
		PriceMin:     q.PriceMin,
		PriceMax:     q.PriceMax,
		FeaturedOnly: q.Featured,
		SortBy:       q.SortBy,
		SortOrder:    q.SortOrder,
	}
	if p.Search == "" {
		p.Search = q.Q
	}
	if q.Page != nil {
		p.Page = *q.Page
	}
	if q.Limit != nil {
		p.Limit = *q.Limit
	}
	return p
}

// ListEvents is the gallery query: filter, sort and paginate in one call.
func (h *EventsHandler) ListEvents(ctx *gin.Context) {
	var q listEventsQuery
	if !BindQuery(ctx, &q) {
		return
	}

	page, err := h.catalog.Query(ctx.Request.Context(), q.params())
	if err != nil {
		respondCatalogError(ctx, err, "Could not list events")
		return
	}

	RespondJSONWithETag(ctx, http.StatusOK, page)
}

func respondList(ctx *gin.Context, items []event.Event) {
	if items == nil {
		items = []event.Event{}
	}
	RespondJSONWithETag(ctx, http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}

func (h *EventsHandler) Today(ctx *gin.Context) {
	items, err := h.catalog.Today(ctx.Request.Context())
	if err != nil {
		respondCatalogError(ctx, err, "Could not list today's events")
		return
	}
	respondList(ctx, items)
}

func (h *EventsHandler) ByDay(ctx *gin.Context) {
	items, err := h.catalog.ByDay(ctx.Request.Context(), ctx.Param("day"))
	if err != nil {
		respondCatalogError(ctx, err, "Could not list events")
		return
	}
	respondList(ctx, items)
}

func (h *EventsHandler) Featured(ctx *gin.Context) {
	items, err := h.catalog.Featured(ctx.Request.Context())
	if err != nil {
		respondCatalogError(ctx, err, "Could not list featured events")
		return
	}
	respondList(ctx, items)
}

func (h *EventsHandler) ByCategory(ctx *gin.Context) {
	items, err := h.catalog.ByCategory(ctx.Request.Context(), ctx.Param("category"))
	if err != nil {
		respondCatalogError(ctx, err, "Could not list events")
		return
	}
	respondList(ctx, items)
}

type searchQuery struct {
	Q string `form:"q" binding:"required"`
}

func (h *EventsHandler) Search(ctx *gin.Context) {
	var q searchQuery
	if !BindQuery(ctx, &q) {
		return
	}

	items, err := h.catalog.Search(ctx.Request.Context(), q.Q)
	if err != nil {
		respondCatalogError(ctx, err, "Could not search events")
		return
	}
	respondList(ctx, items)
}

type upcomingQuery struct {
	Days *int `form:"days" binding:"omitempty,min=0,max=366"`
}

func (h *EventsHandler) Upcoming(ctx *gin.Context) {
	var q upcomingQuery
	if !BindQuery(ctx, &q) {
		return
	}

	days := 7
	if q.Days != nil {
		days = *q.Days
	}

	items, err := h.catalog.Upcoming(ctx.Request.Context(), days)
	if err != nil {
		respondCatalogError(ctx, err, "Could not list upcoming events")
		return
	}
	respondList(ctx, items)
}

func (h *EventsHandler) Stats(ctx *gin.Context) {
	stats, err := h.catalog.Stats(ctx.Request.Context())
	if err != nil {
		respondCatalogError(ctx, err, "Could not compute stats")
		return
	}
	RespondJSONWithETag(ctx, http.StatusOK, stats)
}

func (h *EventsHandler) Categories(ctx *gin.Context) {
	cats, err := h.catalog.Categories(ctx.Request.Context())
	if err != nil {
		respondCatalogError(ctx, err, "Could not list categories")
		return
	}
	RespondJSONWithETag(ctx, http.StatusOK, gin.H{"items": cats})
}

type eventView struct {
	event.Event
	Weekday      string             `json:"weekday"`
	DateLabel    string             `json:"dateLabel"`
	TimeLabel    string             `json:"timeLabel"`
	Availability event.Availability `json:"availability"`
	SpotsLeft    int                `json:"spotsLeft"`
	TimeLeft     string             `json:"timeLeft"`
	ShareURL     string             `json:"shareUrl"`
}

func (h *EventsHandler) view(e event.Event) eventView {
	v := eventView{
		Event:        e,
		DateLabel:    e.Date.Long(),
		TimeLabel:    event.FormatTime12h(e.Time),
		Availability: e.Availability(),
		SpotsLeft:    max(e.MaxParticipants-e.CurrentParticipants, 0),
		TimeLeft:     e.TimeLeft(h.catalog.Now(), h.catalog.Location()),
		ShareURL:     event.ShareURL(h.baseURL, e),
	}
	if w, ok := e.Date.Weekday(); ok {
		v.Weekday = w.String()
	}
	return v
}

func (h *EventsHandler) GetEventByID(ctx *gin.Context) {
	e, err := h.catalog.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondCatalogError(ctx, err, "Could not fetch event")
		return
	}

	RespondJSONWithETag(ctx, http.StatusOK, h.view(e))
}

func (h *EventsHandler) Share(ctx *gin.Context) {
	e, err := h.catalog.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondCatalogError(ctx, err, "Could not fetch event")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"title": e.Title,
		"text":  event.ShareText(e),
		"url":   event.ShareURL(h.baseURL, e),
	})
}
