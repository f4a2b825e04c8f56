package selections

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/geocoder89/videomatch/internal/domain/event"
	"github.com/geocoder89/videomatch/internal/notifications"
)

var (
	ErrAlreadyJoined = errors.New("event already joined")
	ErrEventFull     = errors.New("event is full")
)

const (
	msgAlreadyJoined = "You have already joined this event!"
	msgEventFull     = "Sorry, this event is full!"
	msgSaved         = "Event saved to your favorites!"
	msgUnsaved       = "Event removed from saved events"

	followUpDelay    = 1500 * time.Millisecond
	followUpDuration = 4 * time.Second
)

type EventLookup interface {
	ByID(id string) (event.Event, error)
}

// Scheduler delivers a notification after delay. Delivery failures never
// reach the caller.
type Scheduler interface {
	Schedule(n notifications.Notification, delay time.Duration)
}

type Snapshot struct {
	Joined []string `json:"joined"`
	Saved  []string `json:"saved"`
}

const lockStripes = 64

type Service struct {
	store  Store
	events EventLookup
	notify Scheduler
	log    *slog.Logger

	locks [lockStripes]sync.Mutex
}

func NewService(store Store, events EventLookup, notify Scheduler, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		store:  store,
		events: events,
		notify: notify,
		log:    log,
	}
}

func (s *Service) lock(visitorID string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(visitorID))
	mu := &s.locks[h.Sum32()%lockStripes]
	mu.Lock()
	return mu.Unlock
}

// Join adds eventID to the visitor's joined list. The event record itself
// is not modified.
func (s *Service) Join(ctx context.Context, visitorID, eventID string) (event.Event, error) {
	e, err := s.events.ByID(eventID)
	if err != nil {
		return event.Event{}, err
	}

	unlock := s.lock(visitorID)
	defer unlock()

	joined, err := s.list(ctx, visitorID, KeyJoined)
	if err != nil {
		return event.Event{}, err
	}

	if slices.Contains(joined, eventID) {
		s.toast(visitorID, notifications.KindError, msgAlreadyJoined, 0)
		return e, ErrAlreadyJoined
	}

	if e.IsFull() {
		s.toast(visitorID, notifications.KindError, msgEventFull, 0)
		return e, ErrEventFull
	}

	joined = append(joined, eventID)
	if err := s.save(ctx, visitorID, KeyJoined, joined); err != nil {
		return event.Event{}, err
	}

	s.log.InfoContext(ctx, "event joined", "visitor_id", visitorID, "event_id", eventID)

	s.toast(visitorID, notifications.KindSuccess, fmt.Sprintf("Successfully joined \"%s\"!", e.Title), 0)

	followUp := notifications.New(visitorID, notifications.KindInfo,
		fmt.Sprintf("Event details sent to your email. Join at %s on %s", e.Time, e.Date.Short())).
		WithDuration(followUpDuration)
	s.notify.Schedule(followUp, followUpDelay)

	return e, nil
}

// ToggleSave flips the saved state and reports whether the event is now saved.
func (s *Service) ToggleSave(ctx context.Context, visitorID, eventID string) (bool, error) {
	if _, err := s.events.ByID(eventID); err != nil {
		return false, err
	}

	unlock := s.lock(visitorID)
	defer unlock()

	saved, err := s.list(ctx, visitorID, KeySaved)
	if err != nil {
		return false, err
	}

	nowSaved := true
	if i := slices.Index(saved, eventID); i >= 0 {
		saved = slices.Delete(saved, i, i+1)
		nowSaved = false
	} else {
		saved = append(saved, eventID)
	}

	if err := s.save(ctx, visitorID, KeySaved, saved); err != nil {
		return false, err
	}

	if nowSaved {
		s.toast(visitorID, notifications.KindSuccess, msgSaved, 0)
	} else {
		s.toast(visitorID, notifications.KindInfo, msgUnsaved, 0)
	}

	return nowSaved, nil
}

func (s *Service) Snapshot(ctx context.Context, visitorID string) (Snapshot, error) {
	joined, err := s.list(ctx, visitorID, KeyJoined)
	if err != nil {
		return Snapshot{}, err
	}
	saved, err := s.list(ctx, visitorID, KeySaved)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Joined: joined, Saved: saved}, nil
}

func (s *Service) IsJoined(ctx context.Context, visitorID, eventID string) (bool, error) {
	joined, err := s.list(ctx, visitorID, KeyJoined)
	if err != nil {
		return false, err
	}
	return slices.Contains(joined, eventID), nil
}

func (s *Service) IsSaved(ctx context.Context, visitorID, eventID string) (bool, error) {
	saved, err := s.list(ctx, visitorID, KeySaved)
	if err != nil {
		return false, err
	}
	return slices.Contains(saved, eventID), nil
}

// list never returns nil. A value that does not decode is treated as empty.
func (s *Service) list(ctx context.Context, visitorID, key string) ([]string, error) {
	storeCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	raw, ok, err := s.store.Get(storeCtx, visitorID, key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok || raw == "" {
		return []string{}, nil
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		s.log.WarnContext(ctx, "discarding unreadable visitor state",
			"visitor_id", visitorID,
			"key", key,
			"err", err,
		)
		return []string{}, nil
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func (s *Service) save(ctx context.Context, visitorID, key string, ids []string) error {
	b, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	storeCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	if err := s.store.Set(storeCtx, visitorID, key, string(b)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (s *Service) toast(visitorID string, kind notifications.Kind, msg string, delay time.Duration) {
	s.notify.Schedule(notifications.New(visitorID, kind, msg), delay)
}
