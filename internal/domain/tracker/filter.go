package tracker

import (
	"fmt"
	"strings"

	"dsa_tracker/internal/common"
	"dsa_tracker/internal/domain/model"
)

// Completion status selector values as they appear in query strings.
const (
	StatusAll       = "all"
	StatusCompleted = "completed"
	StatusPending   = "pending"
)

// QuestionFilter combines the tracker criteria. The zero value matches every question.
type QuestionFilter struct {
	Search     string
	Platform   Choice[model.Platform]
	Difficulty Choice[model.Difficulty]
	Completed  Choice[bool]
}

// NormalizeSelector trims and lowercases a query selector value.
func NormalizeSelector(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ParseStatus maps "all", "completed" and "pending" (or empty) to a completion choice.
func ParseStatus(s string) (Choice[bool], error) {
	switch NormalizeSelector(s) {
	case "", StatusAll:
		return Any[bool](), nil
	case StatusCompleted:
		return Exactly(true), nil
	case StatusPending:
		return Exactly(false), nil
	}
	return Choice[bool]{}, fmt.Errorf("unknown status %q: %w", s, common.ErrBadRequest)
}

// ParsePlatformChoice treats "" and "all" as unfiltered.
func ParsePlatformChoice(s string) (Choice[model.Platform], error) {
	s = NormalizeSelector(s)
	if s == "" || s == StatusAll {
		return Any[model.Platform](), nil
	}
	p, err := model.ParsePlatform(s)
	if err != nil {
		return Choice[model.Platform]{}, fmt.Errorf("%w: %w", common.ErrBadRequest, err)
	}
	return Exactly(p), nil
}

// ParseDifficultyChoice treats "" and "all" as unfiltered.
func ParseDifficultyChoice(s string) (Choice[model.Difficulty], error) {
	s = NormalizeSelector(s)
	if s == "" || s == StatusAll {
		return Any[model.Difficulty](), nil
	}
	d, err := model.ParseDifficulty(s)
	if err != nil {
		return Choice[model.Difficulty]{}, fmt.Errorf("%w: %w", common.ErrBadRequest, err)
	}
	return Exactly(d), nil
}

func (f QuestionFilter) MatchesText(q model.Question) bool {
	needle := strings.ToLower(f.Search)
	if strings.Contains(strings.ToLower(q.Title), needle) {
		return true
	}
	for _, tag := range q.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func (f QuestionFilter) Matches(q model.Question) bool {
	return f.MatchesText(q) &&
		f.Platform.Matches(q.Platform) &&
		f.Difficulty.Matches(q.Difficulty) &&
		f.Completed.Matches(q.Completed)
}

// FilterQuestions returns the questions matching f, in input order.
func FilterQuestions(questions []model.Question, f QuestionFilter) []model.Question {
	out := make([]model.Question, 0, len(questions))
	for _, q := range questions {
		if f.Matches(q) {
			out = append(out, q)
		}
	}
	return out
}

type FilterResult struct {
	Questions      []model.Question `json:"questions"`
	Matched        int              `json:"matched"`
	Total          int              `json:"total"`
	CompletedCount int              `json:"completed_count"` // Across the whole collection
	Empty          bool             `json:"empty"`
}

func ApplyFilter(questions []model.Question, f QuestionFilter) FilterResult {
	matched := FilterQuestions(questions, f)
	completed := 0
	for _, q := range questions {
		if q.Completed {
			completed++
		}
	}
	return FilterResult{
		Questions:      matched,
		Matched:        len(matched),
		Total:          len(questions),
		CompletedCount: completed,
		Empty:          len(matched) == 0,
	}
}
