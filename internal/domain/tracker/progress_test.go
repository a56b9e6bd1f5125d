package tracker

import (
	"testing"
	"time"

	"dsa_tracker/internal/domain/model"
	"dsa_tracker/internal/seed"

	"github.com/stretchr/testify/assert"
)

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(5, 0))
	assert.Equal(t, 0, Percent(5, -1))
	assert.Equal(t, 50, Percent(1, 2))
	assert.Equal(t, 33, Percent(1, 3))
	assert.Equal(t, 67, Percent(2, 3))
	assert.Equal(t, 13, Percent(1, 8), "12.5 rounds half away from zero")
}

func TestAggregateProgressSeed(t *testing.T) {
	m := AggregateProgress(seed.Progress(time.Now()), 300)
	assert.Equal(t, 53, m.Overall)
	assert.Equal(t, 300, m.TotalAvailable)
	assert.Equal(t, 46, m.ByDifficulty[model.DifficultyEasy])
	assert.Equal(t, 40, m.ByDifficulty[model.DifficultyMedium])
	assert.Equal(t, 15, m.ByDifficulty[model.DifficultyHard])
	assert.Equal(t, 56, m.ByPlatform[model.PlatformLeetCode])
	assert.Equal(t, 27, m.ByPlatform[model.PlatformGFG])
	assert.Equal(t, 12, m.ByPlatform[model.PlatformCodeforces])
	assert.Equal(t, 5, m.ByPlatform[model.PlatformCustom])
}

func TestAggregateProgressZeroGuard(t *testing.T) {
	m := AggregateProgress(model.UserProgress{}, 300)
	assert.Equal(t, 0, m.Overall)
	for _, d := range model.Difficulties {
		assert.Equal(t, 0, m.ByDifficulty[d])
	}
	for _, p := range model.Platforms {
		assert.Equal(t, 0, m.ByPlatform[p])
	}

	m = AggregateProgress(seed.Progress(time.Now()), 0)
	assert.Equal(t, 0, m.Overall)
}
