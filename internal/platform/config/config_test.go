package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"STORAGE_DRIVER", "OWNER_PASSWORD_HASH", "JWT_SECRET", "TOTAL_QUESTIONS_AVAILABLE", "JWT_EXPIRATION_HOURS"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, _ := Load()

	assert.Same(t, AppConfig, cfg)
	assert.Equal(t, DriverMemory, cfg.StorageDriver)
	assert.Equal(t, 300, cfg.TotalQuestionsAvailable)
	assert.Equal(t, 72*time.Hour, cfg.JWTExp)
	assert.False(t, cfg.AuthEnabled())
	assert.True(t, cfg.WeakJWTSecret())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TOTAL_QUESTIONS_AVAILABLE", "500")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("OWNER_PASSWORD_HASH", "$2a$10$abc")
	t.Setenv("DB_HOST", "db")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, _ := Load()

	assert.Equal(t, 500, cfg.TotalQuestionsAvailable)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.True(t, cfg.AuthEnabled())
	assert.False(t, cfg.WeakJWTSecret())
	assert.Contains(t, cfg.DBConnStr, "host=db")
}
