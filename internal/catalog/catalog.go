package catalog

import (
	"github.com/geocoder89/videomatch/internal/domain/event"
)

// Catalog is the read-only event list built at startup. It is safe for
// concurrent use because nothing mutates it after New.
type Catalog struct {
	events []event.Event
	byID   map[string]int
}

func New(events []event.Event) *Catalog {
	c := &Catalog{
		events: make([]event.Event, len(events)),
		byID:   make(map[string]int, len(events)),
	}
	copy(c.events, events)

	for i, e := range c.events {
		// first record wins on a duplicated id
		if _, ok := c.byID[e.ID]; !ok {
			c.byID[e.ID] = i
		}
	}

	return c
}

// All returns a copy in catalog order.
func (c *Catalog) All() []event.Event {
	out := make([]event.Event, len(c.events))
	copy(out, c.events)
	return out
}

func (c *Catalog) Len() int {
	return len(c.events)
}

func (c *Catalog) ByID(id string) (event.Event, error) {
	i, ok := c.byID[id]
	if !ok {
		return event.Event{}, event.ErrNotFound
	}
	return c.events[i], nil
}

// Categories lists the distinct categories present, in first-seen order.
func (c *Catalog) Categories() []event.Category {
	seen := make(map[event.Category]struct{})
	out := make([]event.Category, 0, 6)

	for _, e := range c.events {
		if _, ok := seen[e.Category]; ok {
			continue
		}
		seen[e.Category] = struct{}{}
		out = append(out, e.Category)
	}

	return out
}
