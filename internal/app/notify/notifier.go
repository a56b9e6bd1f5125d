package notify

import (
	"context"

	"dsa_tracker/internal/domain/model"

	"github.com/rs/zerolog"
)

// Notifier delivers user-facing notifications. Delivery is fire-and-forget:
// implementations log their own failures and never report them to the caller.
type Notifier interface {
	Notify(ctx context.Context, n model.Notification)
}

// Feed exposes the most recent notifications, newest first.
type Feed interface {
	Recent(ctx context.Context, limit int) ([]model.Notification, error)
}

type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (l *LogNotifier) Notify(_ context.Context, n model.Notification) {
	event := l.log.Info()
	if n.Severity == model.SeverityDestructive {
		event = l.log.Warn()
	}
	event.
		Str("headline", n.Headline).
		Str("detail", n.Detail).
		Str("severity", string(n.Severity)).
		Msg("notification")
}

// Fanout forwards every notification to each of its notifiers in order.
type Fanout []Notifier

func (f Fanout) Notify(ctx context.Context, n model.Notification) {
	for _, nt := range f {
		if nt != nil {
			nt.Notify(ctx, n)
		}
	}
}
