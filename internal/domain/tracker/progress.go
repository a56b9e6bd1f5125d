package tracker

import (
	"math"

	"dsa_tracker/internal/domain/model"
)

// Percent returns round(part/whole*100), rounding half away from zero.
// A non-positive whole yields 0.
func Percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

type ProgressMetrics struct {
	Overall        int                      `json:"overall"`
	TotalAvailable int                      `json:"total_available"`
	ByDifficulty   map[model.Difficulty]int `json:"by_difficulty"`
	ByPlatform     map[model.Platform]int   `json:"by_platform"`
}

// AggregateProgress derives the dashboard percentages from a progress snapshot.
// totalAvailable is supplied by configuration, not counted from any collection.
func AggregateProgress(p model.UserProgress, totalAvailable int) ProgressMetrics {
	m := ProgressMetrics{
		Overall:        Percent(p.TotalSolved, totalAvailable),
		TotalAvailable: totalAvailable,
		ByDifficulty:   make(map[model.Difficulty]int, len(model.Difficulties)),
		ByPlatform:     make(map[model.Platform]int, len(model.Platforms)),
	}
	for _, d := range model.Difficulties {
		m.ByDifficulty[d] = Percent(p.CountFor(d), p.TotalSolved)
	}
	for _, pl := range model.Platforms {
		m.ByPlatform[pl] = Percent(p.ByPlatform[pl], p.TotalSolved)
	}
	return m
}
