package notify

import (
	"context"
	"sync"

	"dsa_tracker/internal/domain/model"
)

// Recorder keeps the last notifications in memory. It is the feed used when
// Redis is not configured.
type Recorder struct {
	mu    sync.Mutex
	items []model.Notification
	size  int
}

func NewRecorder(size int) *Recorder {
	if size <= 0 {
		size = 50
	}
	return &Recorder{size: size}
}

func (r *Recorder) Notify(_ context.Context, n model.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append([]model.Notification{n}, r.items...)
	if len(r.items) > r.size {
		r.items = r.items[:r.size]
	}
}

func (r *Recorder) Recent(_ context.Context, limit int) ([]model.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > len(r.items) {
		limit = len(r.items)
	}
	out := make([]model.Notification, limit)
	copy(out, r.items[:limit])
	return out, nil
}

// All returns every recorded notification, newest first.
func (r *Recorder) All() []model.Notification {
	out, _ := r.Recent(context.Background(), 0)
	return out
}
