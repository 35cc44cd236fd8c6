package notify

import (
	"context"
	"log/slog"
)

// Kind classifies a notification for UI display.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notifier receives human-readable messages when cart operations occur.
// Implementations are fire-and-forget: they must not block or fail the
// calling operation.
type Notifier interface {
	Notify(ctx context.Context, kind Kind, message string)
}

// LogNotifier writes notifications to the structured log. The front end
// renders its own toasts from the HTTP response; this keeps an operational
// trail of what the user was told.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier backed by the given logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the notification at a level matching its kind.
func (n *LogNotifier) Notify(ctx context.Context, kind Kind, message string) {
	if kind == KindError {
		n.logger.WarnContext(ctx, "user notification",
			slog.String("kind", string(kind)),
			slog.String("message", message),
		)
		return
	}
	n.logger.InfoContext(ctx, "user notification",
		slog.String("kind", string(kind)),
		slog.String("message", message),
	)
}
