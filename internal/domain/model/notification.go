package model

import (
	"time"
)

type Severity string

const (
	SeverityDefault     Severity = "default"
	SeverityDestructive Severity = "destructive"
)

type Notification struct {
	Headline  string    `json:"headline"`
	Detail    string    `json:"detail"`
	Severity  Severity  `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
}
