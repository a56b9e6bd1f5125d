package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebind(t *testing.T) {
	pg := &DB{Dialect: DialectPostgres}
	lite := &DB{Dialect: DialectSQLite}

	q := "UPDATE questions SET completed = ? WHERE id = ?"
	assert.Equal(t, "UPDATE questions SET completed = $1 WHERE id = $2", pg.Rebind(q))
	assert.Equal(t, q, lite.Rebind(q))
}

func TestMigrateAndWithTx(t *testing.T) {
	ctx := context.Background()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(ctx, db))
	require.NoError(t, Migrate(ctx, db), "migrations must be re-runnable")

	boom := errors.New("boom")
	err = db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO questions (id, position, title, link, platform, difficulty) VALUES ('x', 0, 't', 'l', 'custom', 'easy')`); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var n int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&n))
	assert.Equal(t, 0, n, "failed transaction must roll back")
}
