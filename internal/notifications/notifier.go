package notifications

import (
	"context"
	"errors"
	"time"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

const DefaultDuration = 3 * time.Second

// Notification is a toast addressed to one visitor.
type Notification struct {
	VisitorID  string    `json:"visitorId"`
	Message    string    `json:"message"`
	Kind       Kind      `json:"kind"`
	DurationMs int64     `json:"durationMs"`
	CreatedAt  time.Time `json:"createdAt"`
}

func New(visitorID string, kind Kind, message string) Notification {
	return Notification{
		VisitorID:  visitorID,
		Message:    message,
		Kind:       kind,
		DurationMs: DefaultDuration.Milliseconds(),
		CreatedAt:  time.Now().UTC(),
	}
}

func (n Notification) WithDuration(d time.Duration) Notification {
	n.DurationMs = d.Milliseconds()
	return n
}

// Notifier delivers a toast. Callers treat it as fire-and-forget; the error
// is for logging and retries only.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// Fanout delivers to every notifier and joins their errors.
type Fanout []Notifier

func (f Fanout) Notify(ctx context.Context, n Notification) error {
	var errs []error
	for _, target := range f {
		if err := target.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
