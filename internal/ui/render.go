package ui

import (
	"fmt"
	"strings"
	"time"

	"dsa_tracker/internal/app/service"
	"dsa_tracker/internal/domain/model"
	"dsa_tracker/internal/domain/tracker"
)

const timeLayout = "Mon Jan 2 15:04"

func RenderQuestions(res *tracker.FilterResult) string {
	var b strings.Builder
	b.WriteString(Heading(IconStar, "Questions") + "\n")
	if res.Empty {
		b.WriteString(Muted.Render("No questions found. Try adjusting your filters.") + "\n")
	}
	for _, q := range res.Questions {
		fmt.Fprintf(&b, "%s %-4s %s  %s %s", StatusIcon(q.Completed), q.ID, q.Title, DifficultyText(q.Difficulty), PlatformBadge(q.Platform))
		if len(q.Tags) > 0 {
			b.WriteString(" " + Muted.Render(strings.Join(q.Tags, ", ")))
		}
		b.WriteString("\n")
	}
	b.WriteString(Muted.Render(fmt.Sprintf("Showing %d of %d questions, %d completed", res.Matched, res.Total, res.CompletedCount)) + "\n")
	return b.String()
}

func RenderContests(listing *service.ContestListing) string {
	var b strings.Builder
	b.WriteString(Heading(IconCal, "Contests") + "\n")
	section := func(name string, contests []model.Contest) {
		b.WriteString(H2.Render(name) + "\n")
		if len(contests) == 0 {
			b.WriteString("  " + Muted.Render("No contests") + "\n")
			return
		}
		for _, c := range contests {
			mark := " "
			if c.Registered {
				mark = Good.Render("✓")
			}
			fmt.Fprintf(&b, "  %s %s %s  %s (%d min)\n", mark, PlatformBadge(c.Platform), c.Title,
				c.StartTime.Format(timeLayout), c.DurationMinutes())
		}
	}
	section("This Week", listing.ThisWeek)
	section("Next Week", listing.NextWeek)
	section("Upcoming", listing.Upcoming)
	return b.String()
}

func RenderSheets(sheets []service.SheetView) string {
	var b strings.Builder
	b.WriteString(Heading(IconSheet, "Sheets") + "\n")
	if len(sheets) == 0 {
		b.WriteString(Muted.Render("No sheets yet") + "\n")
	}
	for _, s := range sheets {
		body := strings.Join([]string{
			H2.Render(s.Title) + " " + Muted.Render(s.Slug),
			s.Description,
			LabelValue("Questions", len(s.Questions)),
			LabelValue("Progress", Bar(s.Progress, 20)),
			LabelValue("Updated", s.UpdatedAt.Format(time.DateOnly)),
		}, "\n")
		b.WriteString(Panel.Render(body) + "\n")
	}
	return b.String()
}

func RenderOverview(ov *service.Overview) string {
	var b strings.Builder
	b.WriteString(Heading(IconTrophy, "Overview") + "\n")
	b.WriteString(LabelValue("Solved", fmt.Sprintf("%d / %d", ov.Progress.TotalSolved, ov.Metrics.TotalAvailable)) + "\n")
	b.WriteString(LabelValue("Overall", Bar(ov.Metrics.Overall, 20)) + "\n")
	b.WriteString(LabelValue("Streak", fmt.Sprintf("%s %d days", IconFire, ov.Progress.StreakDays)) + "\n")

	b.WriteString(H2.Render("By difficulty") + "\n")
	for _, d := range model.Difficulties {
		fmt.Fprintf(&b, "  %-8s %4d  %s\n", DifficultyText(d), ov.Progress.CountFor(d), Bar(ov.Metrics.ByDifficulty[d], 10))
	}
	b.WriteString(H2.Render("By platform") + "\n")
	for _, p := range model.Platforms {
		fmt.Fprintf(&b, "  %-12s %4d  %s\n", PlatformBadge(p), ov.Progress.ByPlatform[p], Bar(ov.Metrics.ByPlatform[p], 10))
	}

	b.WriteString(H2.Render("Recent questions") + "\n")
	for _, q := range ov.RecentQuestions {
		fmt.Fprintf(&b, "  %s %s %s\n", StatusIcon(q.Completed), q.Title, DifficultyText(q.Difficulty))
	}
	b.WriteString(H2.Render("This week") + "\n")
	if len(ov.UpcomingContests) == 0 {
		b.WriteString("  " + Muted.Render("No contests this week") + "\n")
	}
	for _, c := range ov.UpcomingContests {
		fmt.Fprintf(&b, "  %s %s  %s\n", PlatformBadge(c.Platform), c.Title, c.StartTime.Format(timeLayout))
	}
	return b.String()
}
