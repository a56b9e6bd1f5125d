package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"dsa_tracker/internal/domain/model"
	"dsa_tracker/internal/platform/database"
	"dsa_tracker/internal/seed"
)

func NewSQLRepositories(db *database.DB) Repositories {
	return Repositories{
		Questions: NewSQLQuestionRepository(db),
		Contests:  NewSQLContestRepository(db),
		Sheets:    NewSQLSheetRepository(db),
		Progress:  NewSQLProgressRepository(db),
	}
}

// SeedIfEmpty loads data into a freshly migrated database. It does nothing when
// questions already exist and reports whether it inserted anything.
func SeedIfEmpty(ctx context.Context, db *database.DB, data seed.Data) (bool, error) {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&n); err != nil {
		return false, fmt.Errorf("count questions: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	err := db.WithTx(ctx, func(tx *sql.Tx) error {
		if err := insertQuestions(ctx, db, tx, data.Questions); err != nil {
			return err
		}
		if err := insertContests(ctx, db, tx, data.Contests); err != nil {
			return err
		}
		if err := insertSheets(ctx, db, tx, data.Sheets); err != nil {
			return err
		}
		return insertProgress(ctx, db, tx, data.Progress)
	})
	if err != nil {
		return false, fmt.Errorf("seed: %w", err)
	}
	return true, nil
}

func insertQuestions(ctx context.Context, db *database.DB, tx *sql.Tx, questions []model.Question) error {
	stmt, err := tx.PrepareContext(ctx, db.Rebind(`INSERT INTO questions (position, `+questionColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`))
	if err != nil {
		return fmt.Errorf("prepare question insert: %w", err)
	}
	defer stmt.Close()

	for i, q := range questions {
		tags, err := json.Marshal(q.Tags)
		if err != nil {
			return fmt.Errorf("encode tags for question %s: %w", q.ID, err)
		}
		var lastAttempted any
		if q.LastAttempted != nil {
			lastAttempted = q.LastAttempted.UTC()
		}
		if _, err := stmt.ExecContext(ctx, i, q.ID, q.Title, q.Link, q.Platform, q.Difficulty, string(tags), q.Completed, q.Notes, lastAttempted); err != nil {
			return fmt.Errorf("insert question %s: %w", q.ID, err)
		}
	}
	return nil
}

func insertContests(ctx context.Context, db *database.DB, tx *sql.Tx, contests []model.Contest) error {
	stmt, err := tx.PrepareContext(ctx, db.Rebind(`INSERT INTO contests (position, `+contestColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`))
	if err != nil {
		return fmt.Errorf("prepare contest insert: %w", err)
	}
	defer stmt.Close()

	for i, c := range contests {
		if _, err := stmt.ExecContext(ctx, i, c.ID, c.Title, c.Platform, c.Link, c.StartTime.UTC(), c.EndTime.UTC(), c.Registered); err != nil {
			return fmt.Errorf("insert contest %s: %w", c.ID, err)
		}
	}
	return nil
}

func insertSheets(ctx context.Context, db *database.DB, tx *sql.Tx, sheets []model.CustomSheet) error {
	stmt, err := tx.PrepareContext(ctx, db.Rebind(`INSERT INTO sheets (`+sheetColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`))
	if err != nil {
		return fmt.Errorf("prepare sheet insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range sheets {
		questions, err := encodeIDs(s.Questions)
		if err != nil {
			return fmt.Errorf("encode questions for sheet %s: %w", s.ID, err)
		}
		if _, err := stmt.ExecContext(ctx, s.ID, s.Title, s.Slug, s.Description, questions, s.Progress, s.CreatedAt.UTC(), s.UpdatedAt.UTC()); err != nil {
			return fmt.Errorf("insert sheet %s: %w", s.ID, err)
		}
	}
	return nil
}

func insertProgress(ctx context.Context, db *database.DB, tx *sql.Tx, p model.UserProgress) error {
	query := db.Rebind(`INSERT INTO user_progress (id, total_solved, easy, medium, hard, leetcode, gfg, codeforces, custom, streak_days, last_active)
	          VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err := tx.ExecContext(ctx, query,
		p.TotalSolved, p.Easy, p.Medium, p.Hard,
		p.ByPlatform[model.PlatformLeetCode], p.ByPlatform[model.PlatformGFG],
		p.ByPlatform[model.PlatformCodeforces], p.ByPlatform[model.PlatformCustom],
		p.StreakDays, p.LastActive.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert user progress: %w", err)
	}
	return nil
}
