package tui

import (
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/bithab/pkg/prefs"
)

// Theme is the resolved style set for one palette.
type Theme struct {
	Title      lipgloss.Style
	Pane       lipgloss.Style
	FocusPane  lipgloss.Style
	Selected   lipgloss.Style
	Muted      lipgloss.Style
	DayOutside lipgloss.Style
	DayToday   lipgloss.Style
	Notice     lipgloss.Style
	ErrNotice  lipgloss.Style
	Help       lipgloss.Style
}

func themeFor(p prefs.Prefs) Theme {
	accent := lipgloss.Color("#3B82F6")
	var fg, muted, outside lipgloss.Color
	if p.Theme == prefs.ThemeLight {
		fg = lipgloss.Color("#1F2937")
		muted = lipgloss.Color("#6B7280")
		outside = lipgloss.Color("#D1D5DB")
	} else {
		fg = lipgloss.Color("#E5E7EB")
		muted = lipgloss.Color("#9CA3AF")
		outside = lipgloss.Color("#4B5563")
	}

	border := lipgloss.RoundedBorder()
	return Theme{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(accent),
		Pane:       lipgloss.NewStyle().Border(border).BorderForeground(muted).Padding(0, 1),
		FocusPane:  lipgloss.NewStyle().Border(border).BorderForeground(accent).Padding(0, 1),
		Selected:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		Muted:      lipgloss.NewStyle().Foreground(muted),
		DayOutside: lipgloss.NewStyle().Foreground(outside),
		DayToday:   lipgloss.NewStyle().Bold(true).Underline(true).Foreground(fg),
		Notice:     lipgloss.NewStyle().Foreground(fg).Background(accent).Padding(0, 1),
		ErrNotice:  lipgloss.NewStyle().Foreground(fg).Background(lipgloss.Color("#E53935")).Padding(0, 1),
		Help:       lipgloss.NewStyle().Foreground(muted),
	}
}
