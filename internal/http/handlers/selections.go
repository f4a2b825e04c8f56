package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/geocoder89/videomatch/internal/domain/event"
	"github.com/geocoder89/videomatch/internal/http/middlewares"
	"github.com/geocoder89/videomatch/internal/notifications"
	"github.com/geocoder89/videomatch/internal/selections"
	"github.com/gin-gonic/gin"
)

// SelectionsService is satisfied by *selections.Service.
type SelectionsService interface {
	Join(ctx context.Context, visitorID, eventID string) (event.Event, error)
	ToggleSave(ctx context.Context, visitorID, eventID string) (bool, error)
	Snapshot(ctx context.Context, visitorID string) (selections.Snapshot, error)
}

type EventLookup interface {
	ByID(id string) (event.Event, error)
}

type InboxDrainer interface {
	Drain(visitorID string) []notifications.Notification
}

type SelectionsHandler struct {
	svc    SelectionsService
	events EventLookup
	inbox  InboxDrainer
}

func NewSelectionsHandler(svc SelectionsService, events EventLookup, inbox InboxDrainer) *SelectionsHandler {
	return &SelectionsHandler{svc: svc, events: events, inbox: inbox}
}

func visitorFrom(ctx *gin.Context) (string, bool) {
	id, ok := middlewares.VisitorIDFromContext(ctx)
	if !ok {
		RespondUnauthorized(ctx, "Missing visitor identity")
	}
	return id, ok
}

func (h *SelectionsHandler) Join(ctx *gin.Context) {
	visitorID, ok := visitorFrom(ctx)
	if !ok {
		return
	}

	e, err := h.svc.Join(ctx.Request.Context(), visitorID, ctx.Param("id"))
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, gin.H{"joined": true, "event": e})
	case errors.Is(err, selections.ErrAlreadyJoined):
		RespondConflict(ctx, "already_joined", "You have already joined this event")
	case errors.Is(err, selections.ErrEventFull):
		RespondConflict(ctx, "event_full", "This event is full")
	case errors.Is(err, event.ErrNotFound):
		RespondNotFound(ctx, "Event not found")
	default:
		slog.Default().ErrorContext(ctx.Request.Context(), "join failed",
			"visitor_id", visitorID, "event_id", ctx.Param("id"), "err", err)
		RespondInternal(ctx, "Could not join event")
	}
}

func (h *SelectionsHandler) ToggleSave(ctx *gin.Context) {
	visitorID, ok := visitorFrom(ctx)
	if !ok {
		return
	}

	saved, err := h.svc.ToggleSave(ctx.Request.Context(), visitorID, ctx.Param("id"))
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, gin.H{"saved": saved})
	case errors.Is(err, event.ErrNotFound):
		RespondNotFound(ctx, "Event not found")
	default:
		slog.Default().ErrorContext(ctx.Request.Context(), "toggle save failed",
			"visitor_id", visitorID, "event_id", ctx.Param("id"), "err", err)
		RespondInternal(ctx, "Could not update saved events")
	}
}

// resolve keeps IDs whose event no longer exists out of the response.
func (h *SelectionsHandler) resolve(ids []string) []event.Event {
	out := make([]event.Event, 0, len(ids))
	for _, id := range ids {
		if e, err := h.events.ByID(id); err == nil {
			out = append(out, e)
		}
	}
	return out
}

func (h *SelectionsHandler) MyEvents(ctx *gin.Context) {
	visitorID, ok := visitorFrom(ctx)
	if !ok {
		return
	}

	snap, err := h.svc.Snapshot(ctx.Request.Context(), visitorID)
	if err != nil {
		slog.Default().ErrorContext(ctx.Request.Context(), "load visitor state failed",
			"visitor_id", visitorID, "err", err)
		RespondInternal(ctx, "Could not load your events")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"joinedIds": snap.Joined,
		"savedIds":  snap.Saved,
		"joined":    h.resolve(snap.Joined),
		"saved":     h.resolve(snap.Saved),
	})
}

func (h *SelectionsHandler) Notifications(ctx *gin.Context) {
	visitorID, ok := visitorFrom(ctx)
	if !ok {
		return
	}

	items := h.inbox.Drain(visitorID)
	ctx.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}
