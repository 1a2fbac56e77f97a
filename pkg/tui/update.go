package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/bithab/pkg/habit"
	"tableflip.dev/bithab/pkg/habit/viewmodel"
	"tableflip.dev/bithab/pkg/session"
)

const noticeDuration = 1500 * time.Millisecond

func expireNotice() tea.Cmd {
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case NoticeMsg:
		m.notice = msg.Text
		m.noticeErr = msg.Err
		return m, expireNotice()

	case noticeExpiredMsg:
		m.notice = ""
		return m, nil

	case StoreChangedMsg:
		if err := m.session.Reload(context.Background()); err != nil {
			m.notice = "Could not refresh."
			m.noticeErr = true
			return m, expireNotice()
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeInput:
			return m.updateInput(msg)
		case modeLog:
			return m.updateLog(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab":
		m.focus = (m.focus + 1) % paneCount
		return m, nil

	case "t":
		m.prefs = m.prefs.ToggleTheme()
		m.theme = themeFor(m.prefs)
		if err := m.prefs.Save(m.prefsPath); err != nil {
			m.notice = "Could not save theme."
			m.noticeErr = true
			return m, expireNotice()
		}
		return m, nil
	}

	switch m.focus {
	case paneActivities:
		return m.updateActivities(msg)
	case paneCalendar:
		return m.updateCalendar(msg)
	case paneGoals:
		return m.updateGoals(msg)
	}
	return m, nil
}

func (m Model) updateActivities(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.sideIdx = clamp(m.sideIdx+1, len(m.sideRows))
	case "k", "up":
		m.sideIdx = clamp(m.sideIdx-1, len(m.sideRows))

	case "enter":
		if row, ok := m.highlightedRow(); ok && row.subID == "" {
			m.session.Apply(session.Intent{Kind: session.KindSelectActivity, ID: row.activityID})
			m.refresh()
		}

	case "a":
		return m.openInput(session.KindAddActivity, "", "New activity")

	case "s":
		if row, ok := m.highlightedRow(); ok {
			return m.openInput(session.KindAddSub, row.activityID, "New sub-activity")
		}

	case "d":
		row, ok := m.highlightedRow()
		if !ok {
			break
		}
		var intent session.Intent
		if row.subID == "" {
			intent = session.Intent{Kind: session.KindRemoveActivity, ID: row.activityID}
		} else {
			intent = session.Intent{Kind: session.KindRemoveSub, ActivityID: row.activityID, ID: row.subID}
		}
		if effect := m.session.Apply(intent); effect.NeedsConfirm {
			m.mode = modeConfirm
			m.pending = intent
			m.prompt = effect.Prompt
		}
	}
	return m, nil
}

func (m Model) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		m.session.Apply(session.Intent{Kind: session.KindPrevMonth})
	case "l", "right":
		m.session.Apply(session.Intent{Kind: session.KindNextMonth})
	case "j":
		m.dayIdx = (m.dayIdx + 7) % 42
	case "k":
		m.dayIdx = (m.dayIdx + 42 - 7) % 42
	case "down":
		m.dayIdx = (m.dayIdx + 7) % 42
	case "up":
		m.dayIdx = (m.dayIdx + 42 - 7) % 42
	case "n":
		m.dayIdx = (m.dayIdx + 1) % 42
	case "p":
		m.dayIdx = (m.dayIdx + 41) % 42

	case "enter":
		view := viewmodel.ProjectMonth(m.session.State, m.session.Cursor, m.session.Today())
		if view.NoSelection {
			m.notice = "Select an activity to see its calendar."
			m.noticeErr = false
			return m, expireNotice()
		}
		day := view.Days[m.dayIdx]
		pills := viewmodel.Pills(m.session.State, m.session.Cursor, day.Key)
		if len(pills) == 0 {
			m.notice = "This activity has no sub-activities to log."
			m.noticeErr = false
			return m, expireNotice()
		}
		m.mode = modeLog
		m.logDate = day.Key
		m.pills = pills
		m.pillIdx = 0
	}
	return m, nil
}

func (m Model) updateGoals(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.goalIdx = clamp(m.goalIdx+1, len(m.session.State.Goals))
	case "k", "up":
		m.goalIdx = clamp(m.goalIdx-1, len(m.session.State.Goals))

	case "enter", " ":
		if g, ok := m.highlightedGoal(); ok {
			m.session.Apply(session.Intent{Kind: session.KindToggleGoal, ID: g.ID})
		}

	case "a":
		return m.openInput(session.KindAddGoal, "", "New goal")

	case "d":
		g, ok := m.highlightedGoal()
		if !ok {
			break
		}
		intent := session.Intent{Kind: session.KindRemoveGoal, ID: g.ID}
		if effect := m.session.Apply(intent); effect.NeedsConfirm {
			m.mode = modeConfirm
			m.pending = intent
			m.prompt = effect.Prompt
		}
	}
	return m, nil
}

func (m Model) openInput(kind session.Kind, parent, placeholder string) (tea.Model, tea.Cmd) {
	m.mode = modeInput
	m.inputKind = kind
	m.inputParent = parent
	m.input.Placeholder = placeholder
	m.input.SetValue("")
	return m, m.input.Focus()
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil

	case "enter":
		name := m.input.Value()
		m.mode = modeBrowse
		m.input.Blur()
		if name == "" {
			return m, nil
		}
		m.session.Apply(session.Intent{
			Kind:       m.inputKind,
			ActivityID: m.inputParent,
			Name:       name,
			Color:      habit.DefaultColor,
		})
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(tea.Msg(msg))
	return m, cmd
}

func (m Model) updateLog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.mode = modeBrowse
		m.pills = nil

	case "j", "down":
		m.pillIdx = clamp(m.pillIdx+1, len(m.pills))
	case "k", "up":
		m.pillIdx = clamp(m.pillIdx-1, len(m.pills))

	case "enter", " ":
		if m.pillIdx < len(m.pills) {
			m.session.Apply(session.Intent{
				Kind: session.KindToggleLog,
				Date: m.logDate,
				ID:   m.pills[m.pillIdx].ID,
			})
			m.pills = viewmodel.Pills(m.session.State, m.session.Cursor, m.logDate)
			m.pillIdx = clamp(m.pillIdx, len(m.pills))
		}
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.pending.Confirmed = true
		m.session.Apply(m.pending)
		m.mode = modeBrowse
		m.pending = session.Intent{}
		m.refresh()
	case "n", "N", "esc":
		m.mode = modeBrowse
		m.pending = session.Intent{}
	}
	return m, nil
}

func (m *Model) highlightedRow() (sideRow, bool) {
	if len(m.sideRows) == 0 {
		return sideRow{}, false
	}
	return m.sideRows[m.sideIdx], true
}

func (m *Model) highlightedGoal() (habit.Goal, bool) {
	goals := m.session.State.Goals
	if len(goals) == 0 {
		return habit.Goal{}, false
	}
	return goals[m.goalIdx], true
}
