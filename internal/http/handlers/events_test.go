package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/geocoder89/videomatch/internal/catalog"
	"github.com/geocoder89/videomatch/internal/domain/event"
	"github.com/geocoder89/videomatch/internal/http/handlers"
	"github.com/geocoder89/videomatch/internal/http/middlewares"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Sunday
var fixtureNow = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

// fakeCatalog answers from the seeded catalog unless a fn field overrides
// the call.
type fakeCatalog struct {
	real *catalog.Service

	queryFn func(ctx context.Context, p catalog.Params) (catalog.Page, error)
	getFn   func(ctx context.Context, id string) (event.Event, error)
	statsFn func(ctx context.Context) (catalog.Stats, error)
}

func newFakeCatalog() *fakeCatalog {
	c := catalog.New(catalog.Seed(fixtureNow))
	return &fakeCatalog{
		real: catalog.NewService(c, catalog.Options{Now: func() time.Time { return fixtureNow }}),
	}
}

func (f *fakeCatalog) Query(ctx context.Context, p catalog.Params) (catalog.Page, error) {
	if f.queryFn != nil {
		return f.queryFn(ctx, p)
	}
	return f.real.Query(ctx, p)
}

func (f *fakeCatalog) Get(ctx context.Context, id string) (event.Event, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return f.real.Get(ctx, id)
}

func (f *fakeCatalog) Today(ctx context.Context) ([]event.Event, error) { return f.real.Today(ctx) }
func (f *fakeCatalog) ByDay(ctx context.Context, day string) ([]event.Event, error) {
	return f.real.ByDay(ctx, day)
}
func (f *fakeCatalog) Featured(ctx context.Context) ([]event.Event, error) {
	return f.real.Featured(ctx)
}
func (f *fakeCatalog) ByCategory(ctx context.Context, c string) ([]event.Event, error) {
	return f.real.ByCategory(ctx, c)
}
func (f *fakeCatalog) Search(ctx context.Context, q string) ([]event.Event, error) {
	return f.real.Search(ctx, q)
}
func (f *fakeCatalog) Upcoming(ctx context.Context, days int) ([]event.Event, error) {
	return f.real.Upcoming(ctx, days)
}
func (f *fakeCatalog) Stats(ctx context.Context) (catalog.Stats, error) {
	if f.statsFn != nil {
		return f.statsFn(ctx)
	}
	return f.real.Stats(ctx)
}
func (f *fakeCatalog) Categories(ctx context.Context) ([]event.Category, error) {
	return f.real.Categories(ctx)
}
func (f *fakeCatalog) Now() time.Time           { return f.real.Now() }
func (f *fakeCatalog) Location() *time.Location { return f.real.Location() }

func setupEventsRouter(c handlers.CatalogReader) *gin.Engine {
	h := handlers.NewEventsHandler(c, "https://videomatch.test")

	r := gin.New()
	r.Use(middlewares.RequestID())
	r.GET("/events", h.ListEvents)
	r.GET("/events/today", h.Today)
	r.GET("/events/day/:day", h.ByDay)
	r.GET("/events/featured", h.Featured)
	r.GET("/events/category/:category", h.ByCategory)
	r.GET("/events/search", h.Search)
	r.GET("/events/upcoming", h.Upcoming)
	r.GET("/events/stats", h.Stats)
	r.GET("/events/categories", h.Categories)
	r.GET("/events/:id", h.GetEventByID)
	r.GET("/events/:id/share", h.Share)
	return r
}

type pageResponse struct {
	Items   []event.Event `json:"items"`
	Total   int           `json:"total"`
	Page    int           `json:"page"`
	Limit   int           `json:"limit"`
	HasMore bool          `json:"hasMore"`
}

type apiErrorResponse struct {
	Error struct {
		Code      string         `json:"code"`
		Message   string         `json:"message"`
		RequestID string         `json:"requestId"`
		Details   map[string]any `json:"details"`
	} `json:"error"`
}

func get(r http.Handler, target string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	return out
}

func TestListEventsHandler(t *testing.T) {
	r := setupEventsRouter(newFakeCatalog())

	tests := []struct {
		name      string
		target    string
		wantTotal int
		wantLen   int
		wantMore  bool
		firstID   string
	}{
		{"defaults", "/events", 29, 12, true, "1"},
		{"premium", "/events?category=premium", 1, 1, false, "5"},
		{"yoga in title", "/events?search=yoga&searchIn=title", 1, 1, false, "19"},
		{"q alias", "/events?q=yoga", 2, 2, false, "9"},
		{"price desc", "/events?sortBy=price&sortOrder=desc&limit=3", 29, 3, true, "5"},
		{"last page", "/events?page=3", 29, 5, false, "25"},
		{"featured only", "/events?featured=true", 7, 7, false, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, tt.target)
			if w.Code != http.StatusOK {
				t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
			}

			resp := decode[pageResponse](t, w)
			if resp.Total != tt.wantTotal || len(resp.Items) != tt.wantLen || resp.HasMore != tt.wantMore {
				t.Fatalf("total=%d len=%d hasMore=%v", resp.Total, len(resp.Items), resp.HasMore)
			}
			if resp.Items[0].ID != tt.firstID {
				t.Fatalf("first id=%s want %s", resp.Items[0].ID, tt.firstID)
			}
		})
	}
}

func TestListEventsInvalidParams(t *testing.T) {
	r := setupEventsRouter(newFakeCatalog())

	tests := []struct {
		target    string
		wantParam string
	}{
		{"/events?page=0", "page"},
		{"/events?limit=500", "limit"},
		{"/events?page=abc", "page"},
		{"/events?featured=maybe", "featured"},
		{"/events?day=Someday", "day"},
		{"/events?category=rave", "category"},
		{"/events?priceRange=cheap", "priceRange"},
		{"/events?sortOrder=sideways", "sortOrder"},
		{"/events?priceMin=abc", "priceMin"},
		{"/events?date=2026-13-01", "date"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := get(r, tt.target)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
			}

			resp := decode[apiErrorResponse](t, w)
			if resp.Error.Code != "invalid_request" {
				t.Fatalf("code=%s", resp.Error.Code)
			}
			if resp.Error.Details["param"] != tt.wantParam {
				t.Fatalf("param=%v want %s", resp.Error.Details["param"], tt.wantParam)
			}
			if resp.Error.RequestID == "" {
				t.Fatalf("missing request id")
			}
		})
	}
}

func TestListEventsETag(t *testing.T) {
	r := setupEventsRouter(newFakeCatalog())

	first := get(r, "/events?category=mixer")
	etag := first.Header().Get("ETag")
	if etag == "" {
		t.Fatalf("missing etag")
	}

	second := get(r, "/events?category=mixer", "If-None-Match", etag)
	if second.Code != http.StatusNotModified {
		t.Fatalf("status=%d", second.Code)
	}

	third := get(r, "/events?category=social", "If-None-Match", etag)
	if third.Code != http.StatusOK {
		t.Fatalf("different result should not match, status=%d", third.Code)
	}
}

func TestListEventsInternalError(t *testing.T) {
	c := newFakeCatalog()
	c.queryFn = func(context.Context, catalog.Params) (catalog.Page, error) {
		return catalog.Page{}, errors.New("boom")
	}

	w := get(setupEventsRouter(c), "/events")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d", w.Code)
	}
	if decode[apiErrorResponse](t, w).Error.Code != "internal_error" {
		t.Fatalf("wrong code")
	}
}

func TestListEventsCancelled(t *testing.T) {
	c := newFakeCatalog()
	c.queryFn = func(context.Context, catalog.Params) (catalog.Page, error) {
		return catalog.Page{}, context.Canceled
	}

	if w := get(setupEventsRouter(c), "/events"); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status=%d", w.Code)
	}
}

type listResponse struct {
	Items []event.Event `json:"items"`
	Count int           `json:"count"`
}

func TestLookupRoutes(t *testing.T) {
	r := setupEventsRouter(newFakeCatalog())

	tests := []struct {
		target    string
		wantCount int
	}{
		{"/events/today", 2},
		{"/events/day/friday", 4},
		{"/events/featured", 7},
		{"/events/category/social", 14},
		{"/events/search?q=night", 6},
		{"/events/upcoming", 9},
		{"/events/upcoming?days=0", 2},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := get(r, tt.target)
			if w.Code != http.StatusOK {
				t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
			}
			resp := decode[listResponse](t, w)
			if resp.Count != tt.wantCount || len(resp.Items) != tt.wantCount {
				t.Fatalf("count=%d len=%d want %d", resp.Count, len(resp.Items), tt.wantCount)
			}
		})
	}
}

func TestLookupRouteErrors(t *testing.T) {
	r := setupEventsRouter(newFakeCatalog())

	for _, target := range []string{
		"/events/day/funday",
		"/events/category/rave",
		"/events/search",
		"/events/upcoming?days=-1",
	} {
		if w := get(r, target); w.Code != http.StatusBadRequest {
			t.Fatalf("%s: status=%d", target, w.Code)
		}
	}
}

func TestStatsAndCategories(t *testing.T) {
	r := setupEventsRouter(newFakeCatalog())

	stats := decode[catalog.Stats](t, get(r, "/events/stats"))
	if stats.Total != 29 || stats.CurrentDay != "Sunday" || stats.TotalAttendees != 615 {
		t.Fatalf("stats=%+v", stats)
	}

	cats := decode[struct {
		Items []string `json:"items"`
	}](t, get(r, "/events/categories"))
	if len(cats.Items) != 6 || cats.Items[0] != "speed-dating" {
		t.Fatalf("categories=%v", cats.Items)
	}
}

func TestGetEventByIDHandler(t *testing.T) {
	r := setupEventsRouter(newFakeCatalog())

	w := get(r, "/events/1")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}

	var got map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}

	want := map[string]any{
		"id":           "1",
		"weekday":      "Sunday",
		"dateLabel":    "Sunday, October 18, 2026",
		"timeLabel":    "7:00 PM",
		"availability": "available",
		"timeLeft":     "9 hours left",
		"shareUrl":     "https://videomatch.test/event/1",
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("%s=%v want %v", k, got[k], v)
		}
	}
	if got["spotsLeft"] != float64(12) {
		t.Fatalf("spotsLeft=%v", got["spotsLeft"])
	}
	if got["price"] != float64(45) {
		t.Fatalf("price=%#v (%T), want JSON number 45", got["price"], got["price"])
	}

	if w := get(r, "/events/999"); w.Code != http.StatusNotFound {
		t.Fatalf("missing event status=%d", w.Code)
	}
}

func TestShareHandler(t *testing.T) {
	r := setupEventsRouter(newFakeCatalog())

	resp := decode[map[string]string](t, get(r, "/events/19/share"))
	if resp["url"] != "https://videomatch.test/event/19" {
		t.Fatalf("url=%s", resp["url"])
	}
	if resp["text"] == "" || resp["title"] != "Sunday Yoga & Brunch" {
		t.Fatalf("resp=%v", resp)
	}
}
