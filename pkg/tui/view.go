package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/bithab/pkg/habit/viewmodel"
)

func (m Model) View() string {
	var body string
	switch m.mode {
	case modeLog:
		body = m.viewLogModal()
	case modeConfirm:
		body = m.viewConfirm()
	default:
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			m.viewActivities(),
			m.viewCalendar(),
			m.viewGoals(),
		)
	}

	lines := []string{body}
	if m.mode == modeInput {
		lines = append(lines, m.theme.Pane.Render(m.input.View()))
	}
	if m.notice != "" {
		style := m.theme.Notice
		if m.noticeErr {
			style = m.theme.ErrNotice
		}
		lines = append(lines, style.Render(m.notice))
	}
	lines = append(lines, m.theme.Help.Render(m.helpLine()))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) pane(p pane) lipgloss.Style {
	if m.focus == p && m.mode == modeBrowse {
		return m.theme.FocusPane
	}
	return m.theme.Pane
}

func (m Model) viewActivities() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Activities"))
	b.WriteString("\n")

	rows := viewmodel.ActivityRows(m.session.State, m.session.Cursor)
	if len(rows) == 0 {
		b.WriteString(m.theme.Muted.Render("Add a main activity to begin."))
		return m.pane(paneActivities).Render(b.String())
	}

	idx := 0
	for _, row := range rows {
		arrow := "►"
		if row.Expanded {
			arrow = "▼"
		}
		line := fmt.Sprintf("%s %s", arrow, row.Name)
		b.WriteString(m.renderSideLine(line, idx, row.Selected))
		idx++
		if !row.Expanded {
			continue
		}
		for _, sub := range row.Subs {
			dot := lipgloss.NewStyle().Foreground(lipgloss.Color(sub.Color)).Render("●")
			line := fmt.Sprintf("  %s %s", dot, sub.Name)
			b.WriteString(m.renderSideLine(line, idx, false))
			idx++
		}
	}
	return m.pane(paneActivities).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderSideLine(line string, idx int, selected bool) string {
	style := lipgloss.NewStyle()
	if selected {
		style = m.theme.Selected
	}
	if m.focus == paneActivities && m.mode == modeBrowse && idx == m.sideIdx {
		style = style.Reverse(true)
	}
	return style.Render(line) + "\n"
}

func (m Model) viewCalendar() string {
	view := viewmodel.ProjectMonth(m.session.State, m.session.Cursor, m.session.Today())

	var b strings.Builder
	title := view.Title
	if view.ActivityName != "" {
		title = fmt.Sprintf("%s — %s", view.Title, view.ActivityName)
	}
	b.WriteString(m.theme.Title.Render(title))
	b.WriteString("\n")

	if view.NoSelection {
		b.WriteString(m.theme.Muted.Render("Select an activity to see its calendar."))
		return m.pane(paneCalendar).Render(b.String())
	}

	b.WriteString(m.theme.Muted.Render(" Su  Mo  Tu  We  Th  Fr  Sa"))
	b.WriteString("\n")
	for i, day := range view.Days {
		b.WriteString(m.renderDay(day, i == m.dayIdx))
		if (i+1)%7 == 0 && i != len(view.Days)-1 {
			b.WriteString("\n")
		}
	}
	return m.pane(paneCalendar).Render(b.String())
}

// renderDay lays out one fixed-width cell: the day number plus up to two
// completion dots in their sub-activity colors.
func (m Model) renderDay(day viewmodel.DayView, highlighted bool) string {
	style := lipgloss.NewStyle()
	if !day.InMonth {
		style = m.theme.DayOutside
	}
	if day.Today {
		style = m.theme.DayToday
	}
	if highlighted && m.focus == paneCalendar && m.mode == modeBrowse {
		style = style.Reverse(true)
	}

	cell := style.Render(fmt.Sprintf("%2d", day.Day))

	dots := ""
	for i, dot := range day.Dots {
		if i == 2 {
			break
		}
		color := dot.Color
		if dot.Logged {
			color = "#9CA3AF"
		}
		dots += lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("•")
	}
	return cell + dots + strings.Repeat(" ", 2-min(len(day.Dots), 2))
}

func (m Model) viewGoals() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Goals"))
	b.WriteString("\n")

	goals := m.session.State.Goals
	if len(goals) == 0 {
		b.WriteString(m.theme.Muted.Render("Add a goal to get started."))
		return m.pane(paneGoals).Render(b.String())
	}
	for i, g := range goals {
		mark := "○"
		style := lipgloss.NewStyle()
		if g.Completed {
			mark = "✓"
			style = m.theme.Muted.Strikethrough(true)
		}
		if m.focus == paneGoals && m.mode == modeBrowse && i == m.goalIdx {
			style = style.Reverse(true)
		}
		b.WriteString(style.Render(fmt.Sprintf("%s %s", mark, g.Name)))
		if i != len(goals)-1 {
			b.WriteString("\n")
		}
	}
	return m.pane(paneGoals).Render(b.String())
}

func (m Model) viewLogModal() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(fmt.Sprintf("Log for %s", m.logDate)))
	b.WriteString("\n")
	for i, p := range m.pills {
		mark := "○"
		if p.Selected {
			mark = "●"
		}
		line := fmt.Sprintf("%s %s", mark, p.Name)
		style := lipgloss.NewStyle()
		if p.Color != "" {
			style = style.Foreground(lipgloss.Color(p.Color))
		}
		if i == m.pillIdx {
			style = style.Reverse(true)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Help.Render("enter toggle · esc close"))
	return m.theme.FocusPane.Render(b.String())
}

func (m Model) viewConfirm() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Confirm"))
	b.WriteString("\n")
	b.WriteString(m.prompt)
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("y confirm · n cancel"))
	return m.theme.FocusPane.Render(b.String())
}

func (m Model) helpLine() string {
	switch m.mode {
	case modeInput:
		return "enter save · esc cancel"
	case modeLog:
		return "j/k move · enter toggle · esc close"
	case modeConfirm:
		return "y confirm · n cancel"
	}
	switch m.focus {
	case paneCalendar:
		return "tab focus · h/l month · j/k/n/p day · enter log · t theme · q quit"
	case paneGoals:
		return "tab focus · j/k move · enter toggle · a add · d delete · t theme · q quit"
	}
	return "tab focus · j/k move · enter select · a add · s sub · d delete · t theme · q quit"
}
