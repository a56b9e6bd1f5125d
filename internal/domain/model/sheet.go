package model

import "time"

type CustomSheet struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Questions   []string  `json:"questions"` // Question IDs, membership only
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Progress    int       `json:"progress"` // Stored percent, 0-100
}

func (s CustomSheet) Clone() CustomSheet {
	c := s
	c.Questions = append([]string{}, s.Questions...)
	return c
}
