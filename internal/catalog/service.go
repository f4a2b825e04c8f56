package catalog

import (
	"context"
	"time"

	"github.com/geocoder89/videomatch/internal/cache"
	"github.com/geocoder89/videomatch/internal/domain/event"
)

// QueryObserver receives one call per catalog read.
type QueryObserver interface {
	ObserveQuery(op string, cacheHit bool, err error, d time.Duration)
}

type noopObserver struct{}

func (noopObserver) ObserveQuery(string, bool, error, time.Duration) {}

type Options struct {
	Location *time.Location
	Now      func() time.Time
	// Latency mimics a remote call before each read. Zero disables it.
	Latency  time.Duration
	CacheTTL time.Duration
	Observer QueryObserver
}

// Service is the catalog as the HTTP layer sees it: reads anchored to the
// current date in the configured location.
type Service struct {
	catalog  *Catalog
	loc      *time.Location
	now      func() time.Time
	latency  time.Duration
	pages    *cache.Cache[Page]
	observer QueryObserver
}

func NewService(c *Catalog, opts Options) *Service {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Observer == nil {
		opts.Observer = noopObserver{}
	}

	return &Service{
		catalog:  c,
		loc:      opts.Location,
		now:      opts.Now,
		latency:  opts.Latency,
		pages:    cache.New[Page](opts.CacheTTL),
		observer: opts.Observer,
	}
}

func (s *Service) Location() *time.Location {
	return s.loc
}

// Now is the service clock in the catalog location.
func (s *Service) Now() time.Time {
	return s.now().In(s.loc)
}

func (s *Service) Catalog() *Catalog {
	return s.catalog
}

// wait resolves exactly once: after the latency or when ctx ends.
func (s *Service) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(s.latency)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Service) observe(op string, hit bool, start time.Time, err error) {
	s.observer.ObserveQuery(op, hit, err, time.Since(start))
}

func (s *Service) Query(ctx context.Context, p Params) (page Page, err error) {
	start := time.Now()
	hit := false
	defer func() { s.observe("query", hit, start, err) }()

	if err = s.wait(ctx); err != nil {
		return Page{}, err
	}

	today := s.Now()
	key := p.CacheKey(event.DateOf(today))

	if cached, ok := s.pages.Get(key); ok {
		hit = true
		return cached, nil
	}

	page, err = Query(s.catalog.events, p, today)
	if err != nil {
		return Page{}, err
	}

	s.pages.Set(key, page)
	return page, nil
}

func (s *Service) Get(ctx context.Context, id string) (e event.Event, err error) {
	start := time.Now()
	defer func() { s.observe("get", false, start, err) }()

	if err = s.wait(ctx); err != nil {
		return event.Event{}, err
	}
	return s.catalog.ByID(id)
}

func (s *Service) Today(ctx context.Context) (out []event.Event, err error) {
	start := time.Now()
	defer func() { s.observe("today", false, start, err) }()

	if err = s.wait(ctx); err != nil {
		return nil, err
	}
	return s.catalog.Today(s.Now()), nil
}

func (s *Service) ByDay(ctx context.Context, day string) (out []event.Event, err error) {
	start := time.Now()
	defer func() { s.observe("by_day", false, start, err) }()

	if err = s.wait(ctx); err != nil {
		return nil, err
	}
	return s.catalog.ByDay(day, s.Now())
}

func (s *Service) Featured(ctx context.Context) (out []event.Event, err error) {
	start := time.Now()
	defer func() { s.observe("featured", false, start, err) }()

	if err = s.wait(ctx); err != nil {
		return nil, err
	}
	return s.catalog.Featured(s.Now()), nil
}

func (s *Service) ByCategory(ctx context.Context, category string) (out []event.Event, err error) {
	start := time.Now()
	defer func() { s.observe("by_category", false, start, err) }()

	if err = s.wait(ctx); err != nil {
		return nil, err
	}
	return s.catalog.ByCategory(category, s.Now())
}

func (s *Service) Search(ctx context.Context, q string) (out []event.Event, err error) {
	start := time.Now()
	defer func() { s.observe("search", false, start, err) }()

	if err = s.wait(ctx); err != nil {
		return nil, err
	}
	return s.catalog.Search(q, s.Now()), nil
}

func (s *Service) Upcoming(ctx context.Context, days int) (out []event.Event, err error) {
	start := time.Now()
	defer func() { s.observe("upcoming", false, start, err) }()

	if err = s.wait(ctx); err != nil {
		return nil, err
	}
	return s.catalog.Upcoming(days, s.Now())
}

func (s *Service) Stats(ctx context.Context) (st Stats, err error) {
	start := time.Now()
	defer func() { s.observe("stats", false, start, err) }()

	if err = s.wait(ctx); err != nil {
		return Stats{}, err
	}
	return s.catalog.Stats(s.Now()), nil
}

func (s *Service) Categories(ctx context.Context) (out []event.Category, err error) {
	start := time.Now()
	defer func() { s.observe("categories", false, start, err) }()

	if err = s.wait(ctx); err != nil {
		return nil, err
	}
	return s.catalog.Categories(), nil
}
