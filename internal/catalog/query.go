package catalog

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/geocoder89/videomatch/internal/domain/event"
	"github.com/shopspring/decimal"
)

const (
	DefaultPage  = 1
	DefaultLimit = 12
)

var ErrInvalidParameter = errors.New("invalid parameter")

type ParamError struct {
	Param  string
	Value  string
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%q: %s", e.Param, e.Value, e.Reason)
}

func (e *ParamError) Unwrap() error {
	return ErrInvalidParameter
}

func invalid(param, value, reason string) error {
	return &ParamError{Param: param, Value: value, Reason: reason}
}

// Params is the full set of gallery filters. Empty strings and zero numbers
// mean "no restriction" or "use the default".
type Params struct {
	Search       string
	SearchIn     string // "all" (default) or "title"
	Day          string
	Date         string
	DateFrom     string
	DateTo       string
	DateRange    string // today, tomorrow, this_week, this_month
	Category     string
	PriceRange   string // free, low, medium, high, premium
	PriceMin     string
	PriceMax     string
	FeaturedOnly bool
	SortBy       string
	SortOrder    string
	Page         int
	Limit        int
}

type Page struct {
	Items   []event.Event `json:"items"`
	Total   int           `json:"total"`
	Page    int           `json:"page"`
	Limit   int           `json:"limit"`
	HasMore bool          `json:"hasMore"`
}

type predicate func(event.Event) bool

type plan struct {
	preds   []predicate
	compare func(a, b event.Event) int
	page    int
	limit   int
}

// Query filters, sorts and paginates events. today anchors the named date
// buckets and should already be in the catalog's location.
func Query(events []event.Event, p Params, today time.Time) (Page, error) {
	pl, err := compile(p, event.DateOf(today))
	if err != nil {
		return Page{}, err
	}

	return paginate(pl.run(events), pl.page, pl.limit), nil
}

// Filter applies the predicates and the sort without paginating.
func Filter(events []event.Event, p Params, today time.Time) ([]event.Event, error) {
	pl, err := compile(p, event.DateOf(today))
	if err != nil {
		return nil, err
	}
	return pl.run(events), nil
}

func (pl plan) run(events []event.Event) []event.Event {
	out := make([]event.Event, 0, len(events))

next:
	for _, e := range events {
		for _, keep := range pl.preds {
			if !keep(e) {
				continue next
			}
		}
		out = append(out, e)
	}

	slices.SortStableFunc(out, pl.compare)

	return out
}

func paginate(items []event.Event, page, limit int) Page {
	total := len(items)

	start := total
	if page-1 <= total/limit {
		start = min((page-1)*limit, total)
	}
	end := min(start+limit, total)

	out := make([]event.Event, end-start)
	copy(out, items[start:end])

	return Page{
		Items:   out,
		Total:   total,
		Page:    page,
		Limit:   limit,
		HasMore: end < total,
	}
}

func compile(p Params, today event.Date) (plan, error) {
	pl := plan{page: DefaultPage, limit: DefaultLimit}

	switch {
	case p.Page < 0:
		return plan{}, invalid("page", strconv.Itoa(p.Page), "must be at least 1")
	case p.Page > 0:
		pl.page = p.Page
	}

	switch {
	case p.Limit < 0:
		return plan{}, invalid("limit", strconv.Itoa(p.Limit), "must be at least 1")
	case p.Limit > 0:
		pl.limit = p.Limit
	}

	if p.Date != "" {
		d, err := event.ParseDate(p.Date)
		if err != nil {
			return plan{}, invalid("date", p.Date, "must be YYYY-MM-DD")
		}
		pl.preds = append(pl.preds, func(e event.Event) bool { return e.Date == d })
	}

	if !isAll(p.Day) {
		want, ok := event.ParseWeekday(p.Day)
		if !ok {
			return plan{}, invalid("day", p.Day, "must be a weekday name")
		}
		pl.preds = append(pl.preds, func(e event.Event) bool {
			got, ok := e.Date.Weekday()
			return ok && got == want
		})
	}

	if !isAll(p.Category) {
		want, ok := event.ParseCategory(p.Category)
		if !ok {
			return plan{}, invalid("category", p.Category, "unknown category")
		}
		pl.preds = append(pl.preds, func(e event.Event) bool { return e.Category == want })
	}

	if !isAll(p.PriceRange) {
		keep, ok := priceBucket(p.PriceRange)
		if !ok {
			return plan{}, invalid("priceRange", p.PriceRange, "must be one of free, low, medium, high, premium")
		}
		pl.preds = append(pl.preds, keep)
	}

	bounds, err := priceBounds(p.PriceMin, p.PriceMax)
	if err != nil {
		return plan{}, err
	}
	pl.preds = append(pl.preds, bounds...)

	dates, err := dateBounds(p, today)
	if err != nil {
		return plan{}, err
	}
	pl.preds = append(pl.preds, dates...)

	if p.FeaturedOnly {
		pl.preds = append(pl.preds, func(e event.Event) bool { return e.Featured })
	}

	if q := strings.ToLower(strings.TrimSpace(p.Search)); q != "" {
		switch strings.ToLower(p.SearchIn) {
		case "", "all":
			pl.preds = append(pl.preds, func(e event.Event) bool {
				return strings.Contains(strings.ToLower(e.Title), q) ||
					strings.Contains(strings.ToLower(e.Description), q) ||
					strings.Contains(strings.ToLower(e.Location), q) ||
					strings.Contains(string(e.Category), q)
			})
		case "title":
			pl.preds = append(pl.preds, func(e event.Event) bool {
				return strings.Contains(strings.ToLower(e.Title), q)
			})
		default:
			return plan{}, invalid("searchIn", p.SearchIn, "must be all or title")
		}
	}

	compare := comparator(p.SortBy)
	switch strings.ToLower(p.SortOrder) {
	case "", "asc":
		pl.compare = compare
	case "desc":
		pl.compare = func(a, b event.Event) int { return -compare(a, b) }
	default:
		return plan{}, invalid("sortOrder", p.SortOrder, "must be asc or desc")
	}

	return pl, nil
}

func isAll(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, "all")
}

var (
	price30  = decimal.NewFromInt(30)
	price60  = decimal.NewFromInt(60)
	price100 = decimal.NewFromInt(100)
)

// Buckets are half-open (lo, hi] so every positive price lands in exactly one.
func priceBucket(name string) (predicate, bool) {
	inRange := func(lo, hi decimal.Decimal) predicate {
		return func(e event.Event) bool {
			return e.Price.GreaterThan(lo) && e.Price.LessThanOrEqual(hi)
		}
	}

	switch strings.ToLower(strings.TrimSpace(name)) {
	case "free":
		return func(e event.Event) bool { return e.Price.IsZero() }, true
	case "low":
		return inRange(decimal.Zero, price30), true
	case "medium":
		return inRange(price30, price60), true
	case "high":
		return inRange(price60, price100), true
	case "premium":
		return func(e event.Event) bool { return e.Price.GreaterThan(price100) }, true
	default:
		return nil, false
	}
}

func priceBounds(rawMin, rawMax string) ([]predicate, error) {
	var preds []predicate
	var lo, hi *decimal.Decimal

	parse := func(param, raw string) (*decimal.Decimal, error) {
		v, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			return nil, invalid(param, raw, "must be a number")
		}
		if v.IsNegative() {
			return nil, invalid(param, raw, "must not be negative")
		}
		return &v, nil
	}

	if strings.TrimSpace(rawMin) != "" {
		v, err := parse("priceMin", rawMin)
		if err != nil {
			return nil, err
		}
		lo = v
		preds = append(preds, func(e event.Event) bool { return e.Price.GreaterThanOrEqual(*lo) })
	}

	if strings.TrimSpace(rawMax) != "" {
		v, err := parse("priceMax", rawMax)
		if err != nil {
			return nil, err
		}
		hi = v
		preds = append(preds, func(e event.Event) bool { return e.Price.LessThanOrEqual(*hi) })
	}

	if lo != nil && hi != nil && lo.GreaterThan(*hi) {
		return nil, invalid("priceMin", rawMin, "must not exceed priceMax")
	}

	return preds, nil
}

func dateBounds(p Params, today event.Date) ([]predicate, error) {
	var preds []predicate

	between := func(from, to event.Date) predicate {
		return func(e event.Event) bool { return e.Date >= from && e.Date <= to }
	}

	if !isAll(p.DateRange) {
		switch strings.ToLower(strings.TrimSpace(p.DateRange)) {
		case "today":
			preds = append(preds, between(today, today))
		case "tomorrow":
			tomorrow := today.AddDays(1)
			preds = append(preds, between(tomorrow, tomorrow))
		case "this_week":
			preds = append(preds, between(today, today.AddDays(7)))
		case "this_month":
			preds = append(preds, between(today, today.AddMonths(1)))
		default:
			return nil, invalid("dateRange", p.DateRange, "must be one of today, tomorrow, this_week, this_month")
		}
	}

	var from, to event.Date
	if p.DateFrom != "" {
		d, err := event.ParseDate(p.DateFrom)
		if err != nil {
			return nil, invalid("dateFrom", p.DateFrom, "must be YYYY-MM-DD")
		}
		from = d
		preds = append(preds, func(e event.Event) bool { return e.Date >= from })
	}
	if p.DateTo != "" {
		d, err := event.ParseDate(p.DateTo)
		if err != nil {
			return nil, invalid("dateTo", p.DateTo, "must be YYYY-MM-DD")
		}
		to = d
		preds = append(preds, func(e event.Event) bool { return e.Date <= to })
	}
	if from != "" && to != "" && from > to {
		return nil, invalid("dateFrom", p.DateFrom, "must not be after dateTo")
	}

	return preds, nil
}

// comparator returns a no-op for unknown keys so the stable sort keeps
// catalog order.
func comparator(sortBy string) func(a, b event.Event) int {
	switch strings.ToLower(strings.TrimSpace(sortBy)) {
	case "", "date":
		return func(a, b event.Event) int { return strings.Compare(string(a.Date), string(b.Date)) }
	case "price", "price_low":
		return func(a, b event.Event) int { return a.Price.Cmp(b.Price) }
	case "price_high":
		return func(a, b event.Event) int { return b.Price.Cmp(a.Price) }
	case "popularity":
		return func(a, b event.Event) int { return cmp.Compare(b.CurrentParticipants, a.CurrentParticipants) }
	case "title", "name":
		return func(a, b event.Event) int { return strings.Compare(a.Title, b.Title) }
	default:
		return func(a, b event.Event) int { return 0 }
	}
}

// CacheKey is a canonical form of the params for result caching.
func (p Params) CacheKey(today event.Date) string {
	norm := func(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

	page, limit := p.Page, p.Limit
	if page == 0 {
		page = DefaultPage
	}
	if limit == 0 {
		limit = DefaultLimit
	}

	return "events:query:v1:today=" + string(today) +
		":q=" + norm(p.Search) +
		":in=" + norm(p.SearchIn) +
		":day=" + norm(p.Day) +
		":date=" + norm(p.Date) +
		":from=" + norm(p.DateFrom) +
		":to=" + norm(p.DateTo) +
		":range=" + norm(p.DateRange) +
		":cat=" + norm(p.Category) +
		":price=" + norm(p.PriceRange) +
		":min=" + norm(p.PriceMin) +
		":max=" + norm(p.PriceMax) +
		":featured=" + strconv.FormatBool(p.FeaturedOnly) +
		":sort=" + norm(p.SortBy) +
		":order=" + norm(p.SortOrder) +
		":page=" + strconv.Itoa(page) +
		":limit=" + strconv.Itoa(limit)
}
