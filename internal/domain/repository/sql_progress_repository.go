package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dsa_tracker/internal/common"
	"dsa_tracker/internal/domain/model"
	"dsa_tracker/internal/platform/database"
)

type sqlProgressRepository struct {
	db *database.DB
}

func NewSQLProgressRepository(db *database.DB) ProgressRepository {
	return &sqlProgressRepository{db: db}
}

func (r *sqlProgressRepository) Get(ctx context.Context) (*model.UserProgress, error) {
	query := `SELECT total_solved, easy, medium, hard, leetcode, gfg, codeforces, custom, streak_days, last_active
	          FROM user_progress WHERE id = 1`
	var (
		p                                 model.UserProgress
		leetcode, gfg, codeforces, custom int
	)
	err := r.db.QueryRowContext(ctx, query).Scan(
		&p.TotalSolved, &p.Easy, &p.Medium, &p.Hard,
		&leetcode, &gfg, &codeforces, &custom,
		&p.StreakDays, &p.LastActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("sqlProgressRepository.Get: %w", err)
	}
	p.ByPlatform = map[model.Platform]int{
		model.PlatformLeetCode:   leetcode,
		model.PlatformGFG:        gfg,
		model.PlatformCodeforces: codeforces,
		model.PlatformCustom:     custom,
	}
	return &p, nil
}
