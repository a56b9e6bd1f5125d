package database

import (
	"context"
	"fmt"
)

// Column types are chosen to work unchanged on PostgreSQL and SQLite.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS questions (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		title TEXT NOT NULL,
		link TEXT NOT NULL,
		platform TEXT NOT NULL,
		difficulty TEXT NOT NULL,
		tags TEXT NOT NULL DEFAULT '[]',
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		notes TEXT,
		last_attempted TIMESTAMP
	);`,
	`CREATE TABLE IF NOT EXISTS sheets (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		slug TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		questions TEXT NOT NULL DEFAULT '[]',
		progress INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_sheets_slug ON sheets (slug);`,
	`CREATE TABLE IF NOT EXISTS contests (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		title TEXT NOT NULL,
		platform TEXT NOT NULL,
		link TEXT NOT NULL,
		start_time TIMESTAMP NOT NULL,
		end_time TIMESTAMP NOT NULL,
		registered BOOLEAN NOT NULL DEFAULT FALSE
	);`,
	`CREATE TABLE IF NOT EXISTS user_progress (
		id INTEGER PRIMARY KEY,
		total_solved INTEGER NOT NULL,
		easy INTEGER NOT NULL,
		medium INTEGER NOT NULL,
		hard INTEGER NOT NULL,
		leetcode INTEGER NOT NULL,
		gfg INTEGER NOT NULL,
		codeforces INTEGER NOT NULL,
		custom INTEGER NOT NULL,
		streak_days INTEGER NOT NULL,
		last_active TIMESTAMP NOT NULL
	);`,
}

func Migrate(ctx context.Context, db *DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
