package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"dsa_tracker/internal/common/security"
	"dsa_tracker/internal/platform/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(driver string) *config.Config {
	return &config.Config{
		APIPort:                 "0",
		AppEnv:                  "test",
		JWTKey:                  []byte("secret"),
		StorageDriver:           driver,
		NotificationFeedSize:    10,
		TotalQuestionsAvailable: 300,
		OverviewRecentLimit:     3,
	}
}

func TestNewWithMemoryStorage(t *testing.T) {
	a, err := New(context.Background(), testConfig(config.DriverMemory), zerolog.Nop())
	require.NoError(t, err)
	defer a.Close()

	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/questions/1/toggle", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	items, err := a.Feed.Recent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Question marked as pending", items[0].Headline)
}

func TestNewWithSQLiteStorage(t *testing.T) {
	cfg := testConfig(config.DriverSQLite)
	cfg.SQLitePath = filepath.Join(t.TempDir(), "app.db")

	a, err := New(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	defer a.Close()

	qs, err := a.Repos.Questions.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, qs, 10)
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	_, err := New(context.Background(), testConfig("mongo"), zerolog.Nop())
	assert.Error(t, err)
}

func TestNewRefusesDefaultSecretWithOwnerAuth(t *testing.T) {
	hash, err := security.HashPassword("hunter2")
	require.NoError(t, err)

	cfg := testConfig(config.DriverMemory)
	cfg.OwnerPasswordHash = hash
	cfg.JWTKey = []byte(config.DefaultJWTSecret)
	_, err = New(context.Background(), cfg, zerolog.Nop())
	assert.ErrorContains(t, err, "JWT_SECRET")

	cfg.JWTKey = nil
	_, err = New(context.Background(), cfg, zerolog.Nop())
	assert.Error(t, err)

	cfg.JWTKey = []byte("a-real-secret")
	a, err := New(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	defer a.Close()

	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/questions/1/toggle", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestDefaultSecretAllowedWithoutOwnerAuth(t *testing.T) {
	cfg := testConfig(config.DriverMemory)
	cfg.JWTKey = []byte(config.DefaultJWTSecret)
	a, err := New(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	a.Close()
}

func TestRunStopsOnCancel(t *testing.T) {
	a, err := New(context.Background(), testConfig(config.DriverMemory), zerolog.Nop())
	require.NoError(t, err)
	defer a.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, a.Run(ctx))
}
