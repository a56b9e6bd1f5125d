package service

import (
	"context"
	"errors"
	"fmt"

	"dsa_tracker/internal/app/notify"
	"dsa_tracker/internal/common"
	"dsa_tracker/internal/domain/model"
	"dsa_tracker/internal/domain/repository"
	"dsa_tracker/internal/domain/tracker"

	"github.com/google/uuid"
)

type SheetService struct {
	base
	sheetRepo    repository.SheetRepository
	questionRepo repository.QuestionRepository
	newID        func() string
}

func NewSheetService(sheetRepo repository.SheetRepository, questionRepo repository.QuestionRepository, notifier notify.Notifier) *SheetService {
	return &SheetService{
		base:         newBase(notifier),
		sheetRepo:    sheetRepo,
		questionRepo: questionRepo,
		newID:        uuid.NewString,
	}
}

// SheetView is a sheet with its progress recomputed from the current question state.
type SheetView struct {
	model.CustomSheet
	DerivedProgress int    `json:"derived_progress"`
	Route           string `json:"route"`
}

type SheetDetail struct {
	SheetView
	Members    []model.Question `json:"members"`
	MissingIDs []string         `json:"missing_ids"`
}

type SheetChangeResult struct {
	Changed bool               `json:"changed"`
	Sheet   *model.CustomSheet `json:"sheet,omitempty"`
}

func (s *SheetService) List(ctx context.Context) ([]SheetView, error) {
	sheets, err := s.sheetRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sheets: %w", err)
	}
	questions, err := s.questionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	views := make([]SheetView, 0, len(sheets))
	for _, sh := range sheets {
		views = append(views, newSheetView(sh, questions))
	}
	return views, nil
}

// Get looks a sheet up by id, falling back to its slug.
func (s *SheetService) Get(ctx context.Context, ref string) (*SheetDetail, error) {
	sheet, err := s.sheetRepo.FindByID(ctx, ref)
	if errors.Is(err, common.ErrNotFound) {
		sheet, err = s.sheetRepo.FindBySlug(ctx, ref)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find sheet %s: %w", ref, err)
	}

	questions, err := s.questionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	byID := make(map[string]model.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	detail := &SheetDetail{
		SheetView:  newSheetView(*sheet, questions),
		Members:    make([]model.Question, 0, len(sheet.Questions)),
		MissingIDs: []string{},
	}
	for _, id := range sheet.Questions {
		if q, ok := byID[id]; ok {
			detail.Members = append(detail.Members, q)
		} else {
			detail.MissingIDs = append(detail.MissingIDs, id)
		}
	}
	return detail, nil
}

// Create validates and stores a new sheet. A blank title is rejected with a
// destructive notification and nothing is stored.
func (s *SheetService) Create(ctx context.Context, in tracker.NewSheetInput) (*model.CustomSheet, error) {
	sheet, err := tracker.NewSheet(in, s.newID(), s.now())
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			s.emit(ctx, tracker.TitleRequiredNotice())
		}
		return nil, err
	}
	if err := s.sheetRepo.Create(ctx, &sheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	s.emit(ctx, tracker.SheetCreatedNotice())
	return &sheet, nil
}

func (s *SheetService) Duplicate(ctx context.Context, id string) (*SheetChangeResult, error) {
	src, err := s.sheetRepo.FindByID(ctx, id)
	if errors.Is(err, common.ErrNotFound) {
		return &SheetChangeResult{Changed: false}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find sheet %s: %w", id, err)
	}

	dup := tracker.DuplicateSheet(*src, s.newID(), s.now())
	if err := s.sheetRepo.Create(ctx, &dup); err != nil {
		return nil, fmt.Errorf("failed to duplicate sheet %s: %w", id, err)
	}
	s.emit(ctx, tracker.SheetDuplicatedNotice(*src))
	return &SheetChangeResult{Changed: true, Sheet: &dup}, nil
}

func (s *SheetService) Delete(ctx context.Context, id string) (*SheetChangeResult, error) {
	removed, err := s.sheetRepo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete sheet %s: %w", id, err)
	}
	if removed == nil {
		return &SheetChangeResult{Changed: false}, nil
	}
	s.emit(ctx, tracker.SheetDeletedNotice(*removed))
	return &SheetChangeResult{Changed: true, Sheet: removed}, nil
}

// SetQuestions replaces the membership of a sheet and refreshes its stored progress.
func (s *SheetService) SetQuestions(ctx context.Context, id string, ids []string) (*SheetView, error) {
	sheet, err := s.sheetRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find sheet %s: %w", id, err)
	}
	questions, err := s.questionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	sheet.Questions = tracker.NormalizeMembership(ids)
	progress := tracker.DerivedProgress(*sheet, questions)

	updated, err := s.sheetRepo.UpdateQuestions(ctx, id, sheet.Questions, progress, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to update sheet %s: %w", id, err)
	}
	view := newSheetView(*updated, questions)
	return &view, nil
}

func newSheetView(sheet model.CustomSheet, questions []model.Question) SheetView {
	return SheetView{
		CustomSheet:     sheet,
		DerivedProgress: tracker.DerivedProgress(sheet, questions),
		Route:           model.SheetDetailRoute(sheet.ID),
	}
}
