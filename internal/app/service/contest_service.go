package service

import (
	"context"
	"fmt"

	"dsa_tracker/internal/app/notify"
	"dsa_tracker/internal/common"
	"dsa_tracker/internal/domain/model"
	"dsa_tracker/internal/domain/repository"
	"dsa_tracker/internal/domain/tracker"
)

type ContestView string

const (
	ContestViewAll        ContestView = "all"
	ContestViewRegistered ContestView = "registered"
)

func ParseContestView(s string) (ContestView, error) {
	switch v := ContestView(tracker.NormalizeSelector(s)); v {
	case "", ContestViewAll:
		return ContestViewAll, nil
	case ContestViewRegistered:
		return v, nil
	default:
		return "", fmt.Errorf("unknown contest view %q: %w", s, common.ErrBadRequest)
	}
}

type ContestService struct {
	base
	contestRepo repository.ContestRepository
}

func NewContestService(contestRepo repository.ContestRepository, notifier notify.Notifier) *ContestService {
	return &ContestService{base: newBase(notifier), contestRepo: contestRepo}
}

type ContestListing struct {
	View  ContestView `json:"view"`
	Total int         `json:"total"`
	tracker.ContestBuckets
}

type ContestToggleResult struct {
	Changed bool           `json:"changed"`
	Contest *model.Contest `json:"contest,omitempty"`
}

// Grouped buckets contests by start time. The registered view filters after grouping.
func (s *ContestService) Grouped(ctx context.Context, view ContestView) (*ContestListing, error) {
	contests, err := s.contestRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contests: %w", err)
	}
	buckets := tracker.GroupByTimeframe(s.now(), contests)
	if view == ContestViewRegistered {
		buckets = buckets.RegisteredOnly()
	}
	return &ContestListing{View: view, Total: buckets.Len(), ContestBuckets: buckets}, nil
}

func (s *ContestService) ToggleRegistration(ctx context.Context, id string) (*ContestToggleResult, error) {
	c, err := s.contestRepo.ToggleRegistered(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle registration for contest %s: %w", id, err)
	}
	if c == nil {
		return &ContestToggleResult{Changed: false}, nil
	}
	s.emit(ctx, tracker.RegistrationNotice(*c))
	return &ContestToggleResult{Changed: true, Contest: c}, nil
}
