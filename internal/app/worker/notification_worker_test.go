package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"dsa_tracker/internal/domain/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessDecodesAndHandles(t *testing.T) {
	w := NewNotificationWorker(nil, "q", zerolog.Nop())
	var got []model.Notification
	w.OnDelivery(func(_ context.Context, n model.Notification) { got = append(got, n) })

	payload, err := json.Marshal(model.Notification{Headline: "Sheet Created", Severity: model.SeverityDefault})
	require.NoError(t, err)

	w.process(context.Background(), string(payload))
	w.process(context.Background(), "not json")

	require.Len(t, got, 1)
	assert.Equal(t, "Sheet Created", got[0].Headline)
}

func TestDefaultHandlerLogs(t *testing.T) {
	var buf bytes.Buffer
	w := NewNotificationWorker(nil, "q", zerolog.New(&buf))

	w.process(context.Background(), `{"headline":"Registered for contest","detail":"Weekly Contest 349","severity":"default"}`)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "notification delivered", line["message"])
	assert.Equal(t, "Weekly Contest 349", line["detail"])
}

func TestStartReturnsOnCancelledContext(t *testing.T) {
	w := NewNotificationWorker(nil, "q", zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()
	<-done
}
