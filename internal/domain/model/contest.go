package model

import (
	"math"
	"time"
)

type Contest struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Platform   Platform  `json:"platform"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Link       string    `json:"link"`
	Registered bool      `json:"registered"`
}

// DurationMinutes is the scheduled length rounded to whole minutes.
func (c Contest) DurationMinutes() int {
	return int(math.Round(c.EndTime.Sub(c.StartTime).Minutes()))
}
