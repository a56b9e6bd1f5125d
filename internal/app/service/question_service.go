package service

import (
	"context"
	"fmt"

	"dsa_tracker/internal/app/notify"
	"dsa_tracker/internal/domain/model"
	"dsa_tracker/internal/domain/repository"
	"dsa_tracker/internal/domain/tracker"
)

type QuestionService struct {
	base
	questionRepo repository.QuestionRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository, notifier notify.Notifier) *QuestionService {
	return &QuestionService{base: newBase(notifier), questionRepo: questionRepo}
}

type QuestionToggleResult struct {
	Changed  bool            `json:"changed"`
	Question *model.Question `json:"question,omitempty"`
}

func (s *QuestionService) List(ctx context.Context) ([]model.Question, error) {
	questions, err := s.questionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}

func (s *QuestionService) Filter(ctx context.Context, f tracker.QuestionFilter) (*tracker.FilterResult, error) {
	questions, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	res := tracker.ApplyFilter(questions, f)
	return &res, nil
}

// Toggle flips completion of one question. Unknown ids are a silent no-op.
func (s *QuestionService) Toggle(ctx context.Context, id string) (*QuestionToggleResult, error) {
	q, err := s.questionRepo.ToggleCompleted(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle question %s: %w", id, err)
	}
	if q == nil {
		return &QuestionToggleResult{Changed: false}, nil
	}
	s.emit(ctx, tracker.CompletionNotice(*q))
	return &QuestionToggleResult{Changed: true, Question: q}, nil
}
