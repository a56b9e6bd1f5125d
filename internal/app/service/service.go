package service

import (
	"context"
	"time"

	"dsa_tracker/internal/app/notify"
	"dsa_tracker/internal/domain/model"
)

// Clock returns the current time. Services take one so tests can pin "now".
type Clock func() time.Time

type base struct {
	notifier notify.Notifier
	now      Clock
}

func newBase(notifier notify.Notifier) base {
	if notifier == nil {
		notifier = notify.Fanout{}
	}
	return base{notifier: notifier, now: time.Now}
}

func (b *base) SetClock(now Clock) {
	b.now = now
}

func (b *base) emit(ctx context.Context, n model.Notification) {
	n.CreatedAt = b.now()
	b.notifier.Notify(ctx, n)
}
