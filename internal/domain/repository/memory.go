package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"dsa_tracker/internal/common"
	"dsa_tracker/internal/domain/model"
	"dsa_tracker/internal/domain/tracker"
	"dsa_tracker/internal/seed"
)

// NewMemoryRepositories keeps the seed data in process memory. Every mutation
// replaces the whole collection under a lock.
func NewMemoryRepositories(data seed.Data) Repositories {
	return Repositories{
		Questions: &memoryQuestionRepository{questions: data.Questions},
		Contests:  &memoryContestRepository{contests: data.Contests},
		Sheets:    &memorySheetRepository{sheets: data.Sheets},
		Progress:  &memoryProgressRepository{progress: data.Progress},
	}
}

type memoryQuestionRepository struct {
	mu        sync.RWMutex
	questions []model.Question
}

func (r *memoryQuestionRepository) List(ctx context.Context) ([]model.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Question, len(r.questions))
	for i, q := range r.questions {
		out[i] = q.Clone()
	}
	return out, nil
}

func (r *memoryQuestionRepository) FindByID(ctx context.Context, id string) (*model.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, q := range r.questions {
		if q.ID == id {
			c := q.Clone()
			return &c, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memoryQuestionRepository) ToggleCompleted(ctx context.Context, id string) (*model.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	next, updated := tracker.ToggleCompletion(r.questions, id)
	r.questions = next
	return updated, nil
}

type memoryContestRepository struct {
	mu       sync.RWMutex
	contests []model.Contest
}

func (r *memoryContestRepository) List(ctx context.Context) ([]model.Contest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Contest(nil), r.contests...), nil
}

func (r *memoryContestRepository) ToggleRegistered(ctx context.Context, id string) (*model.Contest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	next, updated := tracker.ToggleRegistration(r.contests, id)
	r.contests = next
	return updated, nil
}

type memorySheetRepository struct {
	mu     sync.RWMutex
	sheets []model.CustomSheet
}

func (r *memorySheetRepository) List(ctx context.Context) ([]model.CustomSheet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.CustomSheet, len(r.sheets))
	for i, s := range r.sheets {
		out[i] = s.Clone()
	}
	return out, nil
}

func (r *memorySheetRepository) find(match func(model.CustomSheet) bool) (*model.CustomSheet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.sheets {
		if match(s) {
			c := s.Clone()
			return &c, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memorySheetRepository) FindByID(ctx context.Context, id string) (*model.CustomSheet, error) {
	return r.find(func(s model.CustomSheet) bool { return s.ID == id })
}

func (r *memorySheetRepository) FindBySlug(ctx context.Context, slug string) (*model.CustomSheet, error) {
	return r.find(func(s model.CustomSheet) bool { return s.Slug == slug })
}

func (r *memorySheetRepository) Create(ctx context.Context, sheet *model.CustomSheet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sheets {
		if s.ID == sheet.ID {
			return fmt.Errorf("sheet %s already exists: %w", sheet.ID, common.ErrConflict)
		}
	}
	r.sheets = tracker.PrependSheet(r.sheets, sheet.Clone())
	return nil
}

func (r *memorySheetRepository) Delete(ctx context.Context, id string) (*model.CustomSheet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	next, removed := tracker.RemoveSheet(r.sheets, id)
	r.sheets = next
	return removed, nil
}

func (r *memorySheetRepository) UpdateQuestions(ctx context.Context, id string, questions []string, progress int, updatedAt time.Time) (*model.CustomSheet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := make([]model.CustomSheet, len(r.sheets))
	copy(next, r.sheets)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		s := next[i].Clone()
		s.Questions = append([]string{}, questions...)
		s.Progress = progress
		s.UpdatedAt = updatedAt
		next[i] = s
		r.sheets = next
		out := s.Clone()
		return &out, nil
	}
	return nil, fmt.Errorf("sheet %s: %w", id, common.ErrNotFound)
}

type memoryProgressRepository struct {
	progress model.UserProgress
}

func (r *memoryProgressRepository) Get(ctx context.Context) (*model.UserProgress, error) {
	p := r.progress
	p.ByPlatform = make(map[model.Platform]int, len(r.progress.ByPlatform))
	for k, v := range r.progress.ByPlatform {
		p.ByPlatform[k] = v
	}
	return &p, nil
}
