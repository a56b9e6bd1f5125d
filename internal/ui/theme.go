package ui

import (
	"fmt"
	"strings"

	"dsa_tracker/internal/domain/model"

	"github.com/charmbracelet/lipgloss"
)

const (
	IconDone    = "✅"
	IconPending = "⬜"
	IconTrophy  = "🏆"
	IconFire    = "🔥"
	IconSheet   = "📋"
	IconCal     = "📅"
	IconError   = "🧨"
	IconStar    = "⭐"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("220") // yellow
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)

	Panel = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	Badge = lipgloss.NewStyle().Bold(true).Padding(0, 1)
)

var platformColors = map[model.Platform]lipgloss.Color{
	model.PlatformLeetCode:   lipgloss.Color("214"),
	model.PlatformGFG:        lipgloss.Color("34"),
	model.PlatformCodeforces: lipgloss.Color("33"),
	model.PlatformCustom:     lipgloss.Color("141"),
}

var platformLabels = map[model.Platform]string{
	model.PlatformLeetCode:   "LeetCode",
	model.PlatformGFG:        "GFG",
	model.PlatformCodeforces: "Codeforces",
	model.PlatformCustom:     "Custom",
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func DifficultyText(d model.Difficulty) string {
	switch d {
	case model.DifficultyEasy:
		return Good.Render("Easy")
	case model.DifficultyMedium:
		return Warn.Render("Medium")
	case model.DifficultyHard:
		return Bad.Render("Hard")
	default:
		return Muted.Render(string(d))
	}
}

func PlatformBadge(p model.Platform) string {
	label, ok := platformLabels[p]
	if !ok {
		return Muted.Render(string(p))
	}
	return Badge.Foreground(platformColors[p]).Render(label)
}

func StatusIcon(completed bool) string {
	if completed {
		return IconDone
	}
	return IconPending
}

// Bar draws a fixed-width percent bar such as [######----] 60%.
func Bar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	return fmt.Sprintf("[%s%s] %d%%",
		Good.Render(strings.Repeat("#", filled)),
		Muted.Render(strings.Repeat("-", width-filled)),
		percent)
}
