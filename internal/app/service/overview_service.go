package service

import (
	"context"
	"fmt"

	"dsa_tracker/internal/domain/model"
	"dsa_tracker/internal/domain/repository"
	"dsa_tracker/internal/domain/tracker"
)

type OverviewService struct {
	base
	repos          repository.Repositories
	totalAvailable int
	recentLimit    int
}

func NewOverviewService(repos repository.Repositories, totalAvailable, recentLimit int) *OverviewService {
	if recentLimit < 0 {
		recentLimit = 0
	}
	return &OverviewService{
		base:           newBase(nil),
		repos:          repos,
		totalAvailable: totalAvailable,
		recentLimit:    recentLimit,
	}
}

type Overview struct {
	Metrics          tracker.ProgressMetrics `json:"metrics"`
	Progress         model.UserProgress      `json:"progress"`
	RecentQuestions  []model.Question        `json:"recent_questions"`
	UpcomingContests []model.Contest         `json:"upcoming_contests"`
	Navigation       model.Navigation        `json:"navigation"`
}

func (s *OverviewService) Get(ctx context.Context) (*Overview, error) {
	progress, err := s.repos.Progress.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}
	questions, err := s.repos.Questions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	contests, err := s.repos.Contests.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contests: %w", err)
	}

	recent := questions
	if len(recent) > s.recentLimit {
		recent = recent[:s.recentLimit]
	}

	return &Overview{
		Metrics:          tracker.AggregateProgress(*progress, s.totalAvailable),
		Progress:         *progress,
		RecentQuestions:  recent,
		UpcomingContests: tracker.GroupByTimeframe(s.now(), contests).ThisWeek,
		Navigation:       model.DefaultNavigation(),
	}, nil
}
