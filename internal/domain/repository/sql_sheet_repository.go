package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dsa_tracker/internal/common"
	"dsa_tracker/internal/domain/model"
	"dsa_tracker/internal/platform/database"
)

const sheetColumns = `id, title, slug, description, questions, progress, created_at, updated_at`

type sqlSheetRepository struct {
	db *database.DB
}

func NewSQLSheetRepository(db *database.DB) SheetRepository {
	return &sqlSheetRepository{db: db}
}

func scanSheet(row rowScanner) (*model.CustomSheet, error) {
	var (
		s         model.CustomSheet
		questions string
	)
	if err := row.Scan(&s.ID, &s.Title, &s.Slug, &s.Description, &questions, &s.Progress, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(questions), &s.Questions); err != nil {
		return nil, fmt.Errorf("decode questions for sheet %s: %w", s.ID, err)
	}
	if s.Questions == nil {
		s.Questions = []string{}
	}
	return &s, nil
}

func encodeIDs(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *sqlSheetRepository) List(ctx context.Context) ([]model.CustomSheet, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+sheetColumns+` FROM sheets ORDER BY created_at DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("sqlSheetRepository.List query: %w", err)
	}
	defer rows.Close()

	sheets := []model.CustomSheet{}
	for rows.Next() {
		s, err := scanSheet(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlSheetRepository.List scan: %w", err)
		}
		sheets = append(sheets, *s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlSheetRepository.List rows.Err: %w", err)
	}
	return sheets, nil
}

func (r *sqlSheetRepository) findOne(ctx context.Context, column, value string) (*model.CustomSheet, error) {
	query := r.db.Rebind(`SELECT ` + sheetColumns + ` FROM sheets WHERE ` + column + ` = ? ORDER BY created_at DESC LIMIT 1`)
	s, err := scanSheet(r.db.QueryRowContext(ctx, query, value))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *sqlSheetRepository) FindByID(ctx context.Context, id string) (*model.CustomSheet, error) {
	s, err := r.findOne(ctx, "id", id)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("sqlSheetRepository.FindByID: %w", err)
	}
	return s, err
}

func (r *sqlSheetRepository) FindBySlug(ctx context.Context, slug string) (*model.CustomSheet, error) {
	s, err := r.findOne(ctx, "slug", slug)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("sqlSheetRepository.FindBySlug: %w", err)
	}
	return s, err
}

func (r *sqlSheetRepository) Create(ctx context.Context, s *model.CustomSheet) error {
	questions, err := encodeIDs(s.Questions)
	if err != nil {
		return fmt.Errorf("sqlSheetRepository.Create encode: %w", err)
	}
	query := r.db.Rebind(`INSERT INTO sheets (` + sheetColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err = r.db.ExecContext(ctx, query, s.ID, s.Title, s.Slug, s.Description, questions, s.Progress, s.CreatedAt.UTC(), s.UpdatedAt.UTC())
	if err != nil {
		if common.IsDuplicateKey(err) {
			return fmt.Errorf("sheet with this id already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("sqlSheetRepository.Create: %w", err)
	}
	return nil
}

func (r *sqlSheetRepository) Delete(ctx context.Context, id string) (*model.CustomSheet, error) {
	query := r.db.Rebind(`DELETE FROM sheets WHERE id = ? RETURNING ` + sheetColumns)
	s, err := scanSheet(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("sqlSheetRepository.Delete: %w", err)
	}
	return s, nil
}

func (r *sqlSheetRepository) UpdateQuestions(ctx context.Context, id string, questions []string, progress int, updatedAt time.Time) (*model.CustomSheet, error) {
	encoded, err := encodeIDs(questions)
	if err != nil {
		return nil, fmt.Errorf("sqlSheetRepository.UpdateQuestions encode: %w", err)
	}
	query := r.db.Rebind(`UPDATE sheets SET questions = ?, progress = ?, updated_at = ? WHERE id = ? RETURNING ` + sheetColumns)
	s, err := scanSheet(r.db.QueryRowContext(ctx, query, encoded, progress, updatedAt.UTC(), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("sheet %s: %w", id, common.ErrNotFound)
		}
		return nil, fmt.Errorf("sqlSheetRepository.UpdateQuestions: %w", err)
	}
	return s, nil
}
