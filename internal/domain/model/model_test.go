package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnums(t *testing.T) {
	p, err := ParsePlatform("gfg")
	require.NoError(t, err)
	assert.Equal(t, PlatformGFG, p)

	_, err = ParsePlatform("all")
	assert.Error(t, err, "all is a filter value, not a platform")

	d, err := ParseDifficulty("hard")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, d)

	_, err = ParseDifficulty("HARD")
	assert.Error(t, err)
}

func TestContestDurationMinutes(t *testing.T) {
	start := time.Date(2026, 1, 1, 10, 30, 0, 0, time.UTC)
	c := Contest{StartTime: start, EndTime: start.Add(2*time.Hour + 30*time.Second)}
	assert.Equal(t, 121, c.DurationMinutes())
}

func TestQuestionCloneIsDeep(t *testing.T) {
	notes := "revisit"
	q := Question{ID: "1", Tags: []string{"array"}, Notes: &notes}
	c := q.Clone()
	c.Tags[0] = "changed"
	assert.Equal(t, "array", q.Tags[0])
}

func TestQuestionCloneKeepsEmptyTags(t *testing.T) {
	for _, q := range []Question{{ID: "1", Tags: []string{}}, {ID: "2"}} {
		c := q.Clone()
		require.NotNil(t, c.Tags)
		raw, err := json.Marshal(c)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"tags":[]`)
	}
}

func TestNavigation(t *testing.T) {
	nav := DefaultNavigation()
	assert.Equal(t, "/dashboard", nav.Overview)
	assert.Equal(t, "/sheets/abc", SheetDetailRoute("abc"))
}
