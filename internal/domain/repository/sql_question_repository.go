package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"dsa_tracker/internal/common"
	"dsa_tracker/internal/domain/model"
	"dsa_tracker/internal/platform/database"
)

const questionColumns = `id, title, link, platform, difficulty, tags, completed, notes, last_attempted`

type sqlQuestionRepository struct {
	db *database.DB
}

func NewSQLQuestionRepository(db *database.DB) QuestionRepository {
	return &sqlQuestionRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row rowScanner) (*model.Question, error) {
	var (
		q             model.Question
		tags          string
		notes         sql.NullString
		lastAttempted sql.NullTime
	)
	if err := row.Scan(&q.ID, &q.Title, &q.Link, &q.Platform, &q.Difficulty, &tags, &q.Completed, &notes, &lastAttempted); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(tags), &q.Tags); err != nil {
		return nil, fmt.Errorf("decode tags for question %s: %w", q.ID, err)
	}
	if q.Tags == nil {
		q.Tags = []string{}
	}
	if notes.Valid {
		q.Notes = &notes.String
	}
	if lastAttempted.Valid {
		q.LastAttempted = &lastAttempted.Time
	}
	return &q, nil
}

func (r *sqlQuestionRepository) List(ctx context.Context) ([]model.Question, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+questionColumns+` FROM questions ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("sqlQuestionRepository.List query: %w", err)
	}
	defer rows.Close()

	questions := []model.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlQuestionRepository.List scan: %w", err)
		}
		questions = append(questions, *q)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlQuestionRepository.List rows.Err: %w", err)
	}
	return questions, nil
}

func (r *sqlQuestionRepository) FindByID(ctx context.Context, id string) (*model.Question, error) {
	query := r.db.Rebind(`SELECT ` + questionColumns + ` FROM questions WHERE id = ?`)
	q, err := scanQuestion(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("sqlQuestionRepository.FindByID: %w", err)
	}
	return q, nil
}

func (r *sqlQuestionRepository) ToggleCompleted(ctx context.Context, id string) (*model.Question, error) {
	query := r.db.Rebind(`UPDATE questions SET completed = NOT completed WHERE id = ? RETURNING ` + questionColumns)
	q, err := scanQuestion(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("sqlQuestionRepository.ToggleCompleted: %w", err)
	}
	return q, nil
}
