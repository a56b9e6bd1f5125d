package tracker

import (
	"time"

	"dsa_tracker/internal/domain/model"
)

const Week = 7 * 24 * time.Hour

type ContestBuckets struct {
	ThisWeek []model.Contest `json:"this_week"`
	NextWeek []model.Contest `json:"next_week"`
	Upcoming []model.Contest `json:"upcoming"`
}

// GroupByTimeframe partitions contests by start time relative to now.
// Contests that started before now are left out. Input order is kept per bucket.
func GroupByTimeframe(now time.Time, contests []model.Contest) ContestBuckets {
	thisWeekEnd := now.Add(Week)
	nextWeekEnd := thisWeekEnd.Add(Week)

	b := ContestBuckets{
		ThisWeek: []model.Contest{},
		NextWeek: []model.Contest{},
		Upcoming: []model.Contest{},
	}
	for _, c := range contests {
		switch {
		case c.StartTime.Before(now):
			// already started
		case c.StartTime.Before(thisWeekEnd):
			b.ThisWeek = append(b.ThisWeek, c)
		case c.StartTime.Before(nextWeekEnd):
			b.NextWeek = append(b.NextWeek, c)
		default:
			b.Upcoming = append(b.Upcoming, c)
		}
	}
	return b
}

// RegisteredOnly filters every bucket down to registered contests.
func (b ContestBuckets) RegisteredOnly() ContestBuckets {
	return ContestBuckets{
		ThisWeek: registered(b.ThisWeek),
		NextWeek: registered(b.NextWeek),
		Upcoming: registered(b.Upcoming),
	}
}

func (b ContestBuckets) Len() int {
	return len(b.ThisWeek) + len(b.NextWeek) + len(b.Upcoming)
}

func registered(contests []model.Contest) []model.Contest {
	out := make([]model.Contest, 0, len(contests))
	for _, c := range contests {
		if c.Registered {
			out = append(out, c)
		}
	}
	return out
}
