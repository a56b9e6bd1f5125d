package service

import (
	"context"
	"fmt"

	"dsa_tracker/internal/app/notify"
	"dsa_tracker/internal/domain/model"
)

const defaultFeedLimit = 20

type NotificationService struct {
	feed notify.Feed
}

func NewNotificationService(feed notify.Feed) *NotificationService {
	return &NotificationService{feed: feed}
}

func (s *NotificationService) Recent(ctx context.Context, limit int) ([]model.Notification, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	items, err := s.feed.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read notification feed: %w", err)
	}
	return items, nil
}
