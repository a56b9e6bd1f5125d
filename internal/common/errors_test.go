package common

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatusFromError(t *testing.T) {
	cases := map[error]int{
		nil:                                  http.StatusOK,
		fmt.Errorf("x: %w", ErrNotFound):     http.StatusNotFound,
		fmt.Errorf("x: %w", ErrBadRequest):   http.StatusBadRequest,
		fmt.Errorf("x: %w", ErrConflict):     http.StatusConflict,
		fmt.Errorf("x: %w", ErrRateLimited):  http.StatusTooManyRequests,
		fmt.Errorf("x: %w", ErrUnauthorized): http.StatusUnauthorized,
		errors.New("boom"):                   http.StatusInternalServerError,
		&pgconn.PgError{Code: "23505"}:       http.StatusConflict,
		&pgconn.PgError{Code: "23503"}:       http.StatusInternalServerError,
	}
	for err, want := range cases {
		assert.Equal(t, want, HTTPStatusFromError(err), "%v", err)
	}
}

func TestIsDuplicateKeySQLite(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE sheets (id TEXT PRIMARY KEY, slug TEXT UNIQUE)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO sheets (id, slug) VALUES ('a', 'one')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO sheets (id, slug) VALUES ('a', 'two')`)
	require.Error(t, err)
	assert.True(t, IsDuplicateKey(fmt.Errorf("create: %w", err)), "primary key")

	_, err = db.Exec(`INSERT INTO sheets (id, slug) VALUES ('b', 'one')`)
	require.Error(t, err)
	assert.True(t, IsDuplicateKey(err), "unique column")
	assert.Equal(t, http.StatusConflict, HTTPStatusFromError(err))

	assert.False(t, IsDuplicateKey(errors.New("constraint failed")))
}
