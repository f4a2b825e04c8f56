package event

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Date is a calendar date in YYYY-MM-DD form. Lexical order equals
// chronological order, so range checks compare the strings directly.
type Date string

func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

func ParseDate(raw string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", raw, err)
	}
	return DateOf(t), nil
}

func (d Date) Time() (time.Time, error) {
	return time.Parse(DateLayout, string(d))
}

// Weekday is computed on the proleptic Gregorian calendar, independent of
// any location.
func (d Date) Weekday() (time.Weekday, bool) {
	t, err := d.Time()
	if err != nil {
		return time.Sunday, false
	}
	return t.Weekday(), true
}

func (d Date) AddDays(n int) Date {
	t, err := d.Time()
	if err != nil {
		return d
	}
	return DateOf(t.AddDate(0, 0, n))
}

func (d Date) AddMonths(n int) Date {
	t, err := d.Time()
	if err != nil {
		return d
	}
	return DateOf(t.AddDate(0, n, 0))
}

// Long renders "Monday, January 2, 2006".
func (d Date) Long() string {
	t, err := d.Time()
	if err != nil {
		return string(d)
	}
	return t.Format("Monday, January 2, 2006")
}

// Short renders "1/2/2006".
func (d Date) Short() string {
	t, err := d.Time()
	if err != nil {
		return string(d)
	}
	return t.Format("1/2/2006")
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func ParseWeekday(name string) (time.Weekday, bool) {
	w, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	return w, ok
}

// FormatTime12h turns "19:00" into "7:00 PM". Malformed input is returned as is.
func FormatTime12h(hhmm string) string {
	hours, minutes, ok := strings.Cut(hhmm, ":")
	if !ok {
		return hhmm
	}
	h, err := strconv.Atoi(hours)
	if err != nil {
		return hhmm
	}

	ampm := "AM"
	if h >= 12 {
		ampm = "PM"
	}
	display := h % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%s %s", display, minutes, ampm)
}

func (e Event) StartsAt(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateLayout+" 15:04", string(e.Date)+" "+e.Time, loc)
}

func (e Event) TimeLeft(now time.Time, loc *time.Location) string {
	start, err := e.StartsAt(loc)
	if err != nil {
		return ""
	}

	diff := start.Sub(now)
	if diff < 0 {
		return "Event has passed"
	}

	days := int(diff / (24 * time.Hour))
	hours := int(diff % (24 * time.Hour) / time.Hour)
	minutes := int(diff % time.Hour / time.Minute)

	switch {
	case days > 0:
		return plural(days, "day") + " left"
	case hours > 0:
		return plural(hours, "hour") + " left"
	case minutes > 0:
		return plural(minutes, "minute") + " left"
	default:
		return "Starting soon"
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}

func ShareURL(baseURL string, e Event) string {
	return strings.TrimRight(baseURL, "/") + "/event/" + e.ID
}

func ShareText(e Event) string {
	return fmt.Sprintf("Check out this amazing event: %s on %s at %s. Join me at VideoMatch!",
		e.Title, e.Date.Long(), FormatTime12h(e.Time))
}
