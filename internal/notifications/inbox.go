package notifications

import (
	"context"
	"sync"
	"time"
)

const (
	defaultInboxSize        = 20
	defaultInboxMaxVisitors = 10_000
	defaultInboxMaxAge      = 24 * time.Hour
)

type InboxConfig struct {
	// Size bounds the toasts kept per visitor; the newest win.
	Size int
	// MaxVisitors bounds the number of undrained boxes. When full, expired
	// boxes go first, then the least recently touched one.
	MaxVisitors int
	// MaxAge drops a box that has not been touched for this long.
	MaxAge time.Duration
}

type box struct {
	items   []Notification
	touched time.Time
}

// Inbox keeps the most recent notifications per visitor until they are drained.
type Inbox struct {
	mu          sync.Mutex
	size        int
	maxVisitors int
	maxAge      time.Duration
	now         func() time.Time
	boxes       map[string]*box
}

func NewInbox(cfg InboxConfig) *Inbox {
	if cfg.Size <= 0 {
		cfg.Size = defaultInboxSize
	}
	if cfg.MaxVisitors <= 0 {
		cfg.MaxVisitors = defaultInboxMaxVisitors
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = defaultInboxMaxAge
	}
	return &Inbox{
		size:        cfg.Size,
		maxVisitors: cfg.MaxVisitors,
		maxAge:      cfg.MaxAge,
		now:         time.Now,
		boxes:       make(map[string]*box),
	}
}

func (b *Inbox) Notify(_ context.Context, n Notification) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()

	bx, ok := b.boxes[n.VisitorID]
	if ok && b.expired(bx, now) {
		bx.items = nil
	}
	if !ok {
		if len(b.boxes) >= b.maxVisitors {
			b.evict(now)
		}
		bx = &box{}
		b.boxes[n.VisitorID] = bx
	}

	bx.items = append(bx.items, n)
	if len(bx.items) > b.size {
		// oldest first out
		bx.items = append([]Notification(nil), bx.items[len(bx.items)-b.size:]...)
	}
	bx.touched = now

	return nil
}

// Drain returns the pending notifications oldest first and empties the box.
func (b *Inbox) Drain(visitorID string) []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()

	bx, ok := b.boxes[visitorID]
	delete(b.boxes, visitorID)

	if !ok || b.expired(bx, b.now()) || bx.items == nil {
		return []Notification{}
	}
	return bx.items
}

func (b *Inbox) Pending(visitorID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	bx, ok := b.boxes[visitorID]
	if !ok || b.expired(bx, b.now()) {
		return 0
	}
	return len(bx.items)
}

// Visitors counts the boxes currently held, expired ones included.
func (b *Inbox) Visitors() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.boxes)
}

func (b *Inbox) expired(bx *box, now time.Time) bool {
	return now.Sub(bx.touched) > b.maxAge
}

// evict runs with mu held.
func (b *Inbox) evict(now time.Time) {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, bx := range b.boxes {
		if b.expired(bx, now) {
			delete(b.boxes, id)
			continue
		}
		if oldestID == "" || bx.touched.Before(oldest) {
			oldestID, oldest = id, bx.touched
		}
	}

	if len(b.boxes) >= b.maxVisitors && oldestID != "" {
		delete(b.boxes, oldestID)
	}
}
