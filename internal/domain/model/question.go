package model

import (
	"fmt"
	"time"
)

type Platform string
type Difficulty string

const (
	PlatformLeetCode   Platform = "leetcode"
	PlatformGFG        Platform = "gfg"
	PlatformCodeforces Platform = "codeforces"
	PlatformCustom     Platform = "custom"

	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Platforms lists every platform in display order.
var Platforms = []Platform{PlatformLeetCode, PlatformGFG, PlatformCodeforces, PlatformCustom}

// Difficulties lists every difficulty from easiest to hardest.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

func (p Platform) Valid() bool {
	switch p {
	case PlatformLeetCode, PlatformGFG, PlatformCodeforces, PlatformCustom:
		return true
	}
	return false
}

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

func ParsePlatform(s string) (Platform, error) {
	p := Platform(s)
	if !p.Valid() {
		return "", fmt.Errorf("unknown platform %q", s)
	}
	return p, nil
}

func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.Valid() {
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
	return d, nil
}

type Question struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Link          string     `json:"link"`
	Platform      Platform   `json:"platform"`
	Difficulty    Difficulty `json:"difficulty"`
	Tags          []string   `json:"tags"`
	Completed     bool       `json:"completed"`
	Notes         *string    `json:"notes,omitempty"`
	LastAttempted *time.Time `json:"last_attempted,omitempty"`
}

// Clone returns a copy that shares no slices or pointers with q.
func (q Question) Clone() Question {
	c := q
	c.Tags = append(make([]string, 0, len(q.Tags)), q.Tags...)
	if q.Notes != nil {
		n := *q.Notes
		c.Notes = &n
	}
	if q.LastAttempted != nil {
		t := *q.LastAttempted
		c.LastAttempted = &t
	}
	return c
}
