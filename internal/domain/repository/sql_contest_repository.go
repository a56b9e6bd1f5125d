package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dsa_tracker/internal/domain/model"
	"dsa_tracker/internal/platform/database"
)

const contestColumns = `id, title, platform, link, start_time, end_time, registered`

type sqlContestRepository struct {
	db *database.DB
}

func NewSQLContestRepository(db *database.DB) ContestRepository {
	return &sqlContestRepository{db: db}
}

func scanContest(row rowScanner) (*model.Contest, error) {
	var c model.Contest
	if err := row.Scan(&c.ID, &c.Title, &c.Platform, &c.Link, &c.StartTime, &c.EndTime, &c.Registered); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *sqlContestRepository) List(ctx context.Context) ([]model.Contest, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+contestColumns+` FROM contests ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("sqlContestRepository.List query: %w", err)
	}
	defer rows.Close()

	contests := []model.Contest{}
	for rows.Next() {
		c, err := scanContest(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlContestRepository.List scan: %w", err)
		}
		contests = append(contests, *c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlContestRepository.List rows.Err: %w", err)
	}
	return contests, nil
}

func (r *sqlContestRepository) ToggleRegistered(ctx context.Context, id string) (*model.Contest, error) {
	query := r.db.Rebind(`UPDATE contests SET registered = NOT registered WHERE id = ? RETURNING ` + contestColumns)
	c, err := scanContest(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("sqlContestRepository.ToggleRegistered: %w", err)
	}
	return c, nil
}
