package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"dsa_tracker/internal/domain/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RedisNotifier pushes each notification onto a delivery queue drained by the
// notification worker, and onto a capped feed list read back by Recent.
// The queue is capped too, so undelivered items are dropped oldest first when
// no worker is draining it (CLI runs, for instance).
type RedisNotifier struct {
	rdb       *redis.Client
	queueName string
	queueSize int
	feedKey   string
	feedSize  int
	log       zerolog.Logger
}

func NewRedisNotifier(rdb *redis.Client, queueName string, queueSize int, feedKey string, feedSize int, log zerolog.Logger) *RedisNotifier {
	if queueSize <= 0 {
		queueSize = 1000
	}
	if feedSize <= 0 {
		feedSize = 50
	}
	return &RedisNotifier{
		rdb:       rdb,
		queueName: queueName,
		queueSize: queueSize,
		feedKey:   feedKey,
		feedSize:  feedSize,
		log:       log,
	}
}

func (r *RedisNotifier) Notify(ctx context.Context, n model.Notification) {
	payload, err := json.Marshal(n)
	if err != nil {
		r.log.Error().Err(err).Msg("failed to encode notification")
		return
	}

	pipe := r.rdb.TxPipeline()
	pipe.LPush(ctx, r.queueName, payload)
	pipe.LTrim(ctx, r.queueName, 0, int64(r.queueSize-1))
	pipe.LPush(ctx, r.feedKey, payload)
	pipe.LTrim(ctx, r.feedKey, 0, int64(r.feedSize-1))
	if _, err := pipe.Exec(ctx); err != nil {
		r.log.Error().Err(err).
			Str("queue", r.queueName).
			Str("headline", n.Headline).
			Msg("failed to push notification to redis")
	}
}

func (r *RedisNotifier) Recent(ctx context.Context, limit int) ([]model.Notification, error) {
	if limit <= 0 || limit > r.feedSize {
		limit = r.feedSize
	}
	raw, err := r.rdb.LRange(ctx, r.feedKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("redisNotifier.Recent: %w", err)
	}
	return DecodeAll(raw, r.log), nil
}

// Decode parses one queued notification payload.
func Decode(raw string) (model.Notification, error) {
	var n model.Notification
	if err := json.Unmarshal([]byte(raw), &n); err != nil {
		return model.Notification{}, fmt.Errorf("decode notification: %w", err)
	}
	return n, nil
}

// DecodeAll skips payloads that fail to decode.
func DecodeAll(raw []string, log zerolog.Logger) []model.Notification {
	out := make([]model.Notification, 0, len(raw))
	for _, item := range raw {
		n, err := Decode(item)
		if err != nil {
			log.Warn().Err(err).Msg("skipping malformed notification")
			continue
		}
		out = append(out, n)
	}
	return out
}
