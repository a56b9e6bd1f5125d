package model

import "time"

type UserProgress struct {
	TotalSolved int              `json:"total_solved"`
	Easy        int              `json:"easy"`
	Medium      int              `json:"medium"`
	Hard        int              `json:"hard"`
	ByPlatform  map[Platform]int `json:"by_platform"`
	StreakDays  int              `json:"streak_days"`
	LastActive  time.Time        `json:"last_active"`
}

// CountFor returns the solved count for a difficulty.
func (p UserProgress) CountFor(d Difficulty) int {
	switch d {
	case DifficultyEasy:
		return p.Easy
	case DifficultyMedium:
		return p.Medium
	case DifficultyHard:
		return p.Hard
	}
	return 0
}
