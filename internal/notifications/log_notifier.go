package notifications

import (
	"context"
	"log/slog"
)

type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(ctx context.Context, in Notification) error {
	n.log.InfoContext(ctx, "notification",
		"visitor_id", in.VisitorID,
		"kind", string(in.Kind),
		"message", in.Message,
		"duration_ms", in.DurationMs,
	)
	return nil
}
