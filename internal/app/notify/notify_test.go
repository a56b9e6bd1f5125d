package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"

	"dsa_tracker/internal/domain/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notice(i int) model.Notification {
	return model.Notification{
		Headline:  fmt.Sprintf("headline %d", i),
		Detail:    "detail",
		Severity:  model.SeverityDefault,
		CreatedAt: time.Date(2026, 1, 1, 0, 0, i, 0, time.UTC),
	}
}

func TestRecorderKeepsNewestFirstAndCaps(t *testing.T) {
	r := NewRecorder(3)
	ctx := context.Background()
	for i := 1; i <= 5; i++ {
		r.Notify(ctx, notice(i))
	}

	all := r.All()
	require.Len(t, all, 3)
	assert.Equal(t, "headline 5", all[0].Headline)
	assert.Equal(t, "headline 3", all[2].Headline)

	two, err := r.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, two, 2)

	two[0].Headline = "mutated"
	assert.Equal(t, "headline 5", r.All()[0].Headline)
}

func TestFanoutDeliversToEveryNotifier(t *testing.T) {
	a, b := NewRecorder(10), NewRecorder(10)
	Fanout{a, nil, b}.Notify(context.Background(), notice(1))

	assert.Len(t, a.All(), 1)
	assert.Len(t, b.All(), 1)
}

func TestLogNotifierLevels(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(zerolog.New(&buf))

	n.Notify(context.Background(), model.Notification{
		Headline: "Title Required",
		Detail:   "Please enter a title for your sheet",
		Severity: model.SeverityDestructive,
	})

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "Title Required", line["headline"])
	assert.Equal(t, "destructive", line["severity"])
}

func TestDecodeAllSkipsMalformed(t *testing.T) {
	good, err := json.Marshal(notice(1))
	require.NoError(t, err)

	out := DecodeAll([]string{string(good), "{not json"}, zerolog.Nop())
	require.Len(t, out, 1)
	assert.Equal(t, "headline 1", out[0].Headline)
	assert.True(t, out[0].CreatedAt.Equal(notice(1).CreatedAt))
}

// pipelineCapture records transaction pipelines instead of sending them.
type pipelineCapture struct {
	cmds [][]interface{}
}

func (c *pipelineCapture) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return nil, fmt.Errorf("dial disabled in tests")
	}
}

func (c *pipelineCapture) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return next
}

func (c *pipelineCapture) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		for _, cmd := range cmds {
			c.cmds = append(c.cmds, cmd.Args())
		}
		return nil
	}
}

func (c *pipelineCapture) names() []string {
	out := make([]string, 0, len(c.cmds))
	for _, args := range c.cmds {
		out = append(out, strings.ToLower(fmt.Sprint(args[0])))
	}
	return out
}

func TestRedisNotifierCapsQueueAndFeed(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	defer rdb.Close()
	capture := &pipelineCapture{}
	rdb.AddHook(capture)

	rn := NewRedisNotifier(rdb, "q", 5, "feed", 3, zerolog.Nop())
	rn.Notify(context.Background(), notice(1))

	assert.Equal(t, []string{"multi", "lpush", "ltrim", "lpush", "ltrim", "exec"}, capture.names())
	require.Len(t, capture.cmds, 6)
	assert.Equal(t, []interface{}{"ltrim", "q", int64(0), int64(4)}, capture.cmds[2])
	assert.Equal(t, []interface{}{"ltrim", "feed", int64(0), int64(2)}, capture.cmds[4])
}

func TestRedisNotifierDefaultsSizes(t *testing.T) {
	rn := NewRedisNotifier(nil, "q", 0, "feed", 0, zerolog.Nop())
	assert.Equal(t, 1000, rn.queueSize)
	assert.Equal(t, 50, rn.feedSize)
}
