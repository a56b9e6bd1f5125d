package worker

import (
	"context"
	"errors"
	"time"

	"dsa_tracker/internal/app/notify"
	"dsa_tracker/internal/domain/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Handler processes one delivered notification.
type Handler func(ctx context.Context, n model.Notification)

// NotificationWorker drains the notification queue filled by notify.RedisNotifier.
type NotificationWorker struct {
	rdb        *redis.Client
	queueName  string
	log        zerolog.Logger
	handle     Handler
	popTimeout time.Duration
	retryDelay time.Duration
}

func NewNotificationWorker(rdb *redis.Client, queueName string, log zerolog.Logger) *NotificationWorker {
	w := &NotificationWorker{
		rdb:        rdb,
		queueName:  queueName,
		log:        log,
		popTimeout: 5 * time.Second,
		retryDelay: 5 * time.Second,
	}
	w.handle = w.logDelivery
	return w
}

// OnDelivery replaces the default handler, which only logs.
func (w *NotificationWorker) OnDelivery(h Handler) {
	w.handle = h
}

// Start blocks until ctx is cancelled.
func (w *NotificationWorker) Start(ctx context.Context) {
	w.log.Info().Str("queue", w.queueName).Msg("notification worker started")
	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("notification worker stopping")
			return
		default:
		}

		res, err := w.rdb.BRPop(ctx, w.popTimeout, w.queueName).Result()
		if err != nil {
			switch {
			case errors.Is(err, redis.Nil):
				// timed out with an empty queue
			case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
				continue
			default:
				w.log.Error().Err(err).Str("queue", w.queueName).Msg("failed to pop from notification queue")
				w.sleep(ctx, w.retryDelay)
			}
			continue
		}

		// res is [queueName, value]
		if len(res) < 2 || res[1] == "" {
			w.log.Warn().Msg("BRPop returned an empty payload")
			continue
		}
		w.process(ctx, res[1])
	}
}

func (w *NotificationWorker) process(ctx context.Context, payload string) {
	n, err := notify.Decode(payload)
	if err != nil {
		w.log.Error().Err(err).Msg("dropping malformed notification")
		return
	}
	w.handle(ctx, n)
}

func (w *NotificationWorker) logDelivery(_ context.Context, n model.Notification) {
	w.log.Info().
		Str("headline", n.Headline).
		Str("detail", n.Detail).
		Str("severity", string(n.Severity)).
		Time("created_at", n.CreatedAt).
		Msg("notification delivered")
}

func (w *NotificationWorker) sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
