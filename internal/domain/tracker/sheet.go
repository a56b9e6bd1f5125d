package tracker

import (
	"fmt"
	"strings"
	"time"

	"dsa_tracker/internal/common"
	"dsa_tracker/internal/domain/model"

	"github.com/gosimple/slug"
)

var ErrTitleRequired = fmt.Errorf("sheet title is required: %w", common.ErrValidation)

type NewSheetInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// NewSheet validates in and builds an empty sheet stamped with now.
func NewSheet(in NewSheetInput, id string, now time.Time) (model.CustomSheet, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return model.CustomSheet{}, ErrTitleRequired
	}
	return model.CustomSheet{
		ID:          id,
		Title:       title,
		Slug:        slug.Make(title),
		Description: strings.TrimSpace(in.Description),
		Questions:   []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
		Progress:    0,
	}, nil
}

// PrependSheet returns a new collection with s first.
func PrependSheet(sheets []model.CustomSheet, s model.CustomSheet) []model.CustomSheet {
	out := make([]model.CustomSheet, 0, len(sheets)+1)
	out = append(out, s)
	return append(out, sheets...)
}

// DuplicateSheet copies src under a new id. Membership and stored progress carry over.
func DuplicateSheet(src model.CustomSheet, id string, now time.Time) model.CustomSheet {
	c := src.Clone()
	c.ID = id
	c.Title = src.Title + " (Copy)"
	c.Slug = slug.Make(c.Title)
	c.CreatedAt = now
	c.UpdatedAt = now
	return c
}

// RemoveSheet drops the sheet with the given id. The removed sheet is nil when id is unknown.
func RemoveSheet(sheets []model.CustomSheet, id string) ([]model.CustomSheet, *model.CustomSheet) {
	out := make([]model.CustomSheet, 0, len(sheets))
	var removed *model.CustomSheet
	for i := range sheets {
		if removed == nil && sheets[i].ID == id {
			s := sheets[i]
			removed = &s
			continue
		}
		out = append(out, sheets[i])
	}
	return out, removed
}

// NormalizeMembership drops blank and repeated ids, keeping first occurrences in order.
func NormalizeMembership(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// DerivedProgress is the share of the sheet's members that are completed.
// Ids with no matching question count as not completed.
func DerivedProgress(sheet model.CustomSheet, questions []model.Question) int {
	completed := make(map[string]bool, len(questions))
	for _, q := range questions {
		completed[q.ID] = q.Completed
	}
	done := 0
	for _, id := range sheet.Questions {
		if completed[id] {
			done++
		}
	}
	return Percent(done, len(sheet.Questions))
}
