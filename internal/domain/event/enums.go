package event

import (
	"encoding/json"
	"strings"
)

type Category string

const (
	CategorySpeedDating Category = "speed-dating"
	CategoryMixer       Category = "mixer"
	CategoryWorkshop    Category = "workshop"
	CategoryNetworking  Category = "networking"
	CategorySocial      Category = "social"
	CategoryPremium     Category = "premium"
	CategoryUnknown     Category = "unknown"
)

var categories = []Category{
	CategorySpeedDating,
	CategoryMixer,
	CategoryWorkshop,
	CategoryNetworking,
	CategorySocial,
	CategoryPremium,
}

// Categories lists the known categories in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory matches case-insensitively; anything else comes back as
// CategoryUnknown with ok=false.
func ParseCategory(raw string) (Category, bool) {
	v := Category(strings.ToLower(strings.TrimSpace(raw)))
	for _, c := range categories {
		if c == v {
			return c, true
		}
	}
	return CategoryUnknown, false
}

func (c Category) IsValid() bool {
	_, ok := ParseCategory(string(c))
	return ok
}

func (c *Category) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*c, _ = ParseCategory(raw)
	return nil
}

type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusLive      Status = "live"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusUnknown   Status = "unknown"
)

func ParseStatus(raw string) (Status, bool) {
	switch v := Status(strings.ToLower(strings.TrimSpace(raw))); v {
	case StatusUpcoming, StatusLive, StatusCompleted, StatusCancelled:
		return v, true
	default:
		return StatusUnknown, false
	}
}

func (s *Status) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*s, _ = ParseStatus(raw)
	return nil
}

// Availability is how full an event looks to a visitor.
type Availability string

const (
	AvailabilityOpen        Availability = "available"
	AvailabilityFillingFast Availability = "filling-fast"
	AvailabilityAlmostFull  Availability = "almost-full"
	AvailabilityFull        Availability = "full"
)

func (e Event) Availability() Availability {
	if e.MaxParticipants <= 0 {
		return AvailabilityFull
	}

	pct := float64(e.CurrentParticipants) / float64(e.MaxParticipants) * 100

	switch {
	case pct >= 100:
		return AvailabilityFull
	case pct >= 90:
		return AvailabilityAlmostFull
	case pct >= 70:
		return AvailabilityFillingFast
	default:
		return AvailabilityOpen
	}
}
