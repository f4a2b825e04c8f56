package catalog

import (
	"errors"
	"testing"
	"time"

	"github.com/geocoder89/videomatch/internal/domain/event"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Sunday
var fixtureToday = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

func fixture() []event.Event {
	return Seed(fixtureToday)
}

func ids(events []event.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}

func TestSeed(t *testing.T) {
	events := fixture()
	require.Len(t, events, 29)

	assert.Equal(t, event.Date("2026-10-18"), events[0].Date)
	assert.Equal(t, event.Date("2026-10-18"), events[1].Date)
	assert.Equal(t, event.Date("2026-10-19"), events[2].Date)
	assert.Equal(t, event.Date("2026-11-14"), events[28].Date)

	seen := map[string]bool{}
	for _, e := range events {
		assert.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
		assert.True(t, e.Category.IsValid(), "event %s has category %q", e.ID, e.Category)
		assert.False(t, e.Price.IsNegative())
	}

	// requirements must not alias the package-level records
	events[0].Requirements[0] = "changed"
	assert.NotEqual(t, "changed", fixture()[0].Requirements[0])
}

func TestQueryScenarios(t *testing.T) {
	events := fixture()

	t.Run("todays_weekday", func(t *testing.T) {
		page, err := Query(events, Params{Day: "Sunday"}, fixtureToday)
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "9", "16", "23"}, ids(page.Items))
		assert.Equal(t, 5, page.Total)
		assert.False(t, page.HasMore)
	})

	t.Run("premium_category", func(t *testing.T) {
		page, err := Query(events, Params{Category: "premium"}, fixtureToday)
		require.NoError(t, err)
		assert.Equal(t, []string{"5"}, ids(page.Items))
	})

	t.Run("yoga_in_title", func(t *testing.T) {
		page, err := Query(events, Params{Search: "yoga", SearchIn: "title"}, fixtureToday)
		require.NoError(t, err)
		assert.Equal(t, []string{"19"}, ids(page.Items))
	})

	t.Run("yoga_everywhere", func(t *testing.T) {
		page, err := Query(events, Params{Search: "YOGA"}, fixtureToday)
		require.NoError(t, err)
		assert.Equal(t, []string{"9", "19"}, ids(page.Items))
	})

	t.Run("top_three_by_price", func(t *testing.T) {
		page, err := Query(events, Params{SortBy: "price", SortOrder: "desc", Limit: 3}, fixtureToday)
		require.NoError(t, err)
		assert.Equal(t, []string{"5", "18", "2"}, ids(page.Items))
		assert.True(t, page.HasMore)
		assert.Equal(t, 29, page.Total)
	})
}

func TestQueryDefaults(t *testing.T) {
	page, err := Query(fixture(), Params{}, fixtureToday)
	require.NoError(t, err)

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, DefaultLimit, page.Limit)
	assert.Len(t, page.Items, DefaultLimit)
	assert.True(t, page.HasMore)
}

func TestQueryPagination(t *testing.T) {
	events := fixture()

	tests := []struct {
		name      string
		page      int
		limit     int
		wantLen   int
		wantMore  bool
		wantFirst string
	}{
		{"first", 1, 10, 10, true, "1"},
		{"middle", 2, 10, 10, true, "11"},
		{"last_partial", 3, 10, 9, false, "21"},
		{"exact_end", 1, 29, 29, false, "1"},
		{"beyond", 4, 10, 0, false, ""},
		{"far_beyond", 1 << 40, 1 << 30, 0, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := Query(events, Params{Page: tt.page, Limit: tt.limit}, fixtureToday)
			require.NoError(t, err)

			require.NotNil(t, page.Items)
			assert.Len(t, page.Items, tt.wantLen)
			assert.Equal(t, tt.wantMore, page.HasMore)
			assert.Equal(t, 29, page.Total)
			if tt.wantFirst != "" {
				assert.Equal(t, tt.wantFirst, page.Items[0].ID)
			}
		})
	}
}

func TestQueryInvariants(t *testing.T) {
	events := fixture()

	paramSets := []Params{
		{},
		{Limit: 5},
		{Limit: 5, Page: 6},
		{Category: "social", Limit: 4, Page: 2},
		{SortBy: "popularity"},
		{PriceRange: "low", SortBy: "price"},
		{DateRange: "this_week", Limit: 3},
		{Search: "night", SortBy: "title", SortOrder: "desc"},
		{Day: "friday", Page: 2, Limit: 1},
	}

	for _, p := range paramSets {
		page, err := Query(events, p, fixtureToday)
		require.NoError(t, err)

		assert.LessOrEqual(t, len(page.Items), page.Limit)
		assert.LessOrEqual(t, len(page.Items), page.Total)
		assert.Equal(t, (page.Page-1)*page.Limit+len(page.Items) < page.Total, page.HasMore, "params %+v", p)

		again, err := Query(events, p, fixtureToday)
		require.NoError(t, err)
		assert.Equal(t, page, again)
	}
}

func TestQuerySortOrder(t *testing.T) {
	events := fixture()

	byPrice, err := Query(events, Params{SortBy: "price", Limit: 29}, fixtureToday)
	require.NoError(t, err)
	for i := 1; i < len(byPrice.Items); i++ {
		assert.True(t, byPrice.Items[i-1].Price.LessThanOrEqual(byPrice.Items[i].Price))
	}
	// stable: the two 20s keep catalog order
	assert.Equal(t, []string{"25", "12", "22"}, ids(byPrice.Items[:3]))

	byPopularity, err := Query(events, Params{SortBy: "popularity", Limit: 29}, fixtureToday)
	require.NoError(t, err)
	for i := 1; i < len(byPopularity.Items); i++ {
		assert.GreaterOrEqual(t, byPopularity.Items[i-1].CurrentParticipants, byPopularity.Items[i].CurrentParticipants)
	}
	assert.Equal(t, "17", byPopularity.Items[0].ID)

	byTitle, err := Query(events, Params{SortBy: "name", Limit: 2}, fixtureToday)
	require.NoError(t, err)
	assert.Equal(t, []string{"12", "6"}, ids(byTitle.Items))

	priceHigh, err := Query(events, Params{SortBy: "price_high", Limit: 1}, fixtureToday)
	require.NoError(t, err)
	assert.Equal(t, "5", priceHigh.Items[0].ID)

	unknown, err := Query(events, Params{SortBy: "vibes", SortOrder: "desc", Limit: 29}, fixtureToday)
	require.NoError(t, err)
	assert.Equal(t, ids(events), ids(unknown.Items))
}

func TestQueryWeekdayFilter(t *testing.T) {
	events := fixture()

	for _, day := range []string{"Monday", "tuesday", "WEDNESDAY", "Thursday", "friday", "Saturday", "sunday"} {
		want, _ := event.ParseWeekday(day)

		page, err := Query(events, Params{Day: day, Limit: 29}, fixtureToday)
		require.NoError(t, err)
		assert.NotEmpty(t, page.Items)

		for _, e := range page.Items {
			got, ok := e.Date.Weekday()
			require.True(t, ok)
			assert.Equal(t, want, got)
		}
	}

	all, err := Query(events, Params{Day: "All", Limit: 29}, fixtureToday)
	require.NoError(t, err)
	assert.Equal(t, 29, all.Total)
}

func TestQueryPriceFilters(t *testing.T) {
	events := fixture()

	count := func(p Params) int {
		t.Helper()
		page, err := Query(events, p, fixtureToday)
		require.NoError(t, err)
		return page.Total
	}

	assert.Equal(t, 0, count(Params{PriceRange: "free"}))
	assert.Equal(t, 1, count(Params{PriceRange: "premium"}))
	assert.Equal(t, 2, count(Params{PriceRange: "high"}))

	// every event lands in exactly one bucket
	total := 0
	for _, b := range []string{"free", "low", "medium", "high", "premium"} {
		total += count(Params{PriceRange: b})
	}
	assert.Equal(t, 29, total)

	// 30 belongs to low, not medium
	low, err := Query(events, Params{PriceRange: "low", Limit: 29}, fixtureToday)
	require.NoError(t, err)
	assert.Contains(t, ids(low.Items), "7")

	assert.Equal(t, 3, count(Params{PriceMin: "60", PriceMax: "100"}))
	assert.Equal(t, 2, count(Params{PriceMin: "65.5"}))
	assert.Equal(t, 3, count(Params{PriceMax: "20"}))
}

func TestQueryDateFilters(t *testing.T) {
	events := fixture()

	count := func(p Params) int {
		t.Helper()
		page, err := Query(events, p, fixtureToday)
		require.NoError(t, err)
		return page.Total
	}

	assert.Equal(t, 2, count(Params{DateRange: "today"}))
	assert.Equal(t, 1, count(Params{DateRange: "tomorrow"}))
	assert.Equal(t, 9, count(Params{DateRange: "this_week"}))
	assert.Equal(t, 29, count(Params{DateRange: "this_month"}))
	assert.Equal(t, 1, count(Params{Date: "2026-10-25"}))
	assert.Equal(t, 3, count(Params{DateFrom: "2026-10-20", DateTo: "2026-10-22"}))
	assert.Equal(t, 0, count(Params{Date: "2027-01-01"}))
}

func TestQueryFiltersCombine(t *testing.T) {
	// titles name a weekday but dates are relative to today
	page, err := Query(fixture(), Params{Category: "social", PriceRange: "low", Day: "saturday"}, fixtureToday)
	require.NoError(t, err)
	assert.Equal(t, []string{"22"}, ids(page.Items))
}

func TestQueryInvalidParameters(t *testing.T) {
	tests := []struct {
		name  string
		p     Params
		param string
	}{
		{"negative_limit", Params{Limit: -1}, "limit"},
		{"negative_page", Params{Page: -2}, "page"},
		{"bad_day", Params{Day: "Funday"}, "day"},
		{"bad_category", Params{Category: "rave"}, "category"},
		{"bad_bucket", Params{PriceRange: "cheap"}, "priceRange"},
		{"non_numeric_min", Params{PriceMin: "ten"}, "priceMin"},
		{"negative_max", Params{PriceMax: "-5"}, "priceMax"},
		{"min_above_max", Params{PriceMin: "50", PriceMax: "10"}, "priceMin"},
		{"bad_date", Params{Date: "18/10/2026"}, "date"},
		{"bad_range", Params{DateRange: "next_year"}, "dateRange"},
		{"reversed_dates", Params{DateFrom: "2026-10-30", DateTo: "2026-10-20"}, "dateFrom"},
		{"bad_order", Params{SortOrder: "sideways"}, "sortOrder"},
		{"bad_scope", Params{Search: "x", SearchIn: "host"}, "searchIn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Query(fixture(), tt.p, fixtureToday)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidParameter))

			var pe *ParamError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.param, pe.Param)
		})
	}
}

func TestQueryEmptyCatalog(t *testing.T) {
	for _, p := range []Params{{}, {Page: 3, Limit: 1}, {Category: "mixer", SortBy: "price"}} {
		page, err := Query(nil, p, fixtureToday)
		require.NoError(t, err)
		assert.Equal(t, []event.Event{}, page.Items)
		assert.Equal(t, 0, page.Total)
		assert.False(t, page.HasMore)
	}
}

func TestCacheKeyNormalizes(t *testing.T) {
	a := Params{Search: " Yoga ", Category: "Social"}.CacheKey("2026-10-18")
	b := Params{Search: "yoga", Category: "social", Page: 1, Limit: DefaultLimit}.CacheKey("2026-10-18")
	assert.Equal(t, a, b)

	c := Params{Search: "yoga"}.CacheKey("2026-10-19")
	assert.NotEqual(t, b, c)
}

func TestQueryDecimalPrices(t *testing.T) {
	events := []event.Event{
		{ID: "a", Date: "2026-10-18", Price: decimal.RequireFromString("30.00")},
		{ID: "b", Date: "2026-10-18", Price: decimal.RequireFromString("30.01")},
	}

	low, err := Query(events, Params{PriceRange: "low"}, fixtureToday)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids(low.Items))

	medium, err := Query(events, Params{PriceRange: "medium"}, fixtureToday)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, ids(medium.Items))
}
