package repository

import (
	"context"
	"time"

	"dsa_tracker/internal/domain/model"
)

type QuestionRepository interface {
	List(ctx context.Context) ([]model.Question, error)
	FindByID(ctx context.Context, id string) (*model.Question, error)
	// ToggleCompleted flips one question. Unknown ids return (nil, nil).
	ToggleCompleted(ctx context.Context, id string) (*model.Question, error)
}

type ContestRepository interface {
	List(ctx context.Context) ([]model.Contest, error)
	// ToggleRegistered flips one contest. Unknown ids return (nil, nil).
	ToggleRegistered(ctx context.Context, id string) (*model.Contest, error)
}

type SheetRepository interface {
	// List returns sheets newest first.
	List(ctx context.Context) ([]model.CustomSheet, error)
	FindByID(ctx context.Context, id string) (*model.CustomSheet, error)
	FindBySlug(ctx context.Context, slug string) (*model.CustomSheet, error)
	Create(ctx context.Context, sheet *model.CustomSheet) error
	// Delete removes a sheet and returns it. Unknown ids return (nil, nil).
	Delete(ctx context.Context, id string) (*model.CustomSheet, error)
	UpdateQuestions(ctx context.Context, id string, questions []string, progress int, updatedAt time.Time) (*model.CustomSheet, error)
}

type ProgressRepository interface {
	Get(ctx context.Context) (*model.UserProgress, error)
}

// Repositories bundles one implementation of every repository.
type Repositories struct {
	Questions QuestionRepository
	Contests  ContestRepository
	Sheets    SheetRepository
	Progress  ProgressRepository
}
