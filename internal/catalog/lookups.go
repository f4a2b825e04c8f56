package catalog

import (
	"strconv"
	"time"

	"github.com/geocoder89/videomatch/internal/domain/event"
)

// The lookups below are fixed presets over Filter. They return every match
// in date order rather than a single page.

func (c *Catalog) Today(today time.Time) []event.Event {
	out, _ := Filter(c.events, Params{Date: string(event.DateOf(today))}, today)
	return out
}

func (c *Catalog) ByDay(day string, today time.Time) ([]event.Event, error) {
	return Filter(c.events, Params{Day: day}, today)
}

func (c *Catalog) Featured(today time.Time) []event.Event {
	out, _ := Filter(c.events, Params{FeaturedOnly: true}, today)
	return out
}

func (c *Catalog) ByCategory(category string, today time.Time) ([]event.Event, error) {
	return Filter(c.events, Params{Category: category}, today)
}

func (c *Catalog) Search(query string, today time.Time) []event.Event {
	out, _ := Filter(c.events, Params{Search: query}, today)
	return out
}

func (c *Catalog) ByDate(date string, today time.Time) ([]event.Event, error) {
	if date == "" {
		return nil, invalid("date", date, "is required")
	}
	return Filter(c.events, Params{Date: date}, today)
}

func (c *Catalog) ByDateRange(from, to string, today time.Time) ([]event.Event, error) {
	if from == "" {
		return nil, invalid("from", from, "is required")
	}
	if to == "" {
		return nil, invalid("to", to, "is required")
	}
	return Filter(c.events, Params{DateFrom: from, DateTo: to}, today)
}

// Upcoming covers today through today+days inclusive.
func (c *Catalog) Upcoming(days int, today time.Time) ([]event.Event, error) {
	if days < 0 {
		return nil, invalid("days", strconv.Itoa(days), "must not be negative")
	}

	from := event.DateOf(today)
	return Filter(c.events, Params{
		DateFrom:  string(from),
		DateTo:    string(from.AddDays(days)),
		SortBy:    "date",
		SortOrder: "asc",
	}, today)
}

type Stats struct {
	Total            int                    `json:"total"`
	TodaysCount      int                    `json:"todaysCount"`
	CurrentDayCount  int                    `json:"currentDayCount"`
	CurrentDay       string                 `json:"currentDay"`
	EventsByDay      map[string]int         `json:"eventsByDay"`
	EventsByCategory map[event.Category]int `json:"eventsByCategory"`
	Featured         int                    `json:"featured"`
	TotalAttendees   int                    `json:"totalAttendees"`
}

var statsWeek = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday,
}

func (c *Catalog) Stats(today time.Time) Stats {
	todayDate := event.DateOf(today)
	currentDay := today.Weekday()

	s := Stats{
		Total:            len(c.events),
		CurrentDay:       currentDay.String(),
		EventsByDay:      make(map[string]int, len(statsWeek)),
		EventsByCategory: make(map[event.Category]int),
	}

	for _, d := range statsWeek {
		s.EventsByDay[d.String()] = 0
	}

	for _, e := range c.events {
		if e.Date == todayDate {
			s.TodaysCount++
		}
		if w, ok := e.Date.Weekday(); ok {
			s.EventsByDay[w.String()]++
			if w == currentDay {
				s.CurrentDayCount++
			}
		}
		s.EventsByCategory[e.Category]++
		if e.Featured {
			s.Featured++
		}
		s.TotalAttendees += e.CurrentParticipants
	}

	return s
}
