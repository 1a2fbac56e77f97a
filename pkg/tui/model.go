// Package tui is the interactive terminal client: activity sidebar, month
// calendar with completion dots, goal checklist, and the day-logging modal.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/bithab/pkg/datekey"
	"tableflip.dev/bithab/pkg/habit/viewmodel"
	"tableflip.dev/bithab/pkg/prefs"
	"tableflip.dev/bithab/pkg/session"
)

type pane int

const (
	paneActivities pane = iota
	paneCalendar
	paneGoals
	paneCount
)

type mode int

const (
	modeBrowse mode = iota
	modeInput
	modeLog
	modeConfirm
)

// NoticeMsg carries a transient status message into the program, typically
// from the save queue's notify callback.
type NoticeMsg session.Notice

type noticeExpiredMsg struct{}

// StoreChangedMsg reports an out-of-band write to the remote store; the model
// reloads and re-derives its views.
type StoreChangedMsg struct{}

// sideRow is one highlightable line of the sidebar: an activity, or one of
// its sub-activities when expanded.
type sideRow struct {
	activityID string
	subID      string
}

type Model struct {
	session   *session.Session
	prefs     prefs.Prefs
	prefsPath string
	theme     Theme

	focus pane
	mode  mode

	sideRows []sideRow
	sideIdx  int
	goalIdx  int
	dayIdx   int

	input       textinput.Model
	inputKind   session.Kind
	inputParent string

	logDate datekey.Key
	pills   []viewmodel.Pill
	pillIdx int

	pending session.Intent
	prompt  string

	notice    string
	noticeErr bool

	width  int
	height int
}

// New builds the TUI model for an open session.
func New(s *session.Session, p prefs.Prefs, prefsPath string) Model {
	input := textinput.New()
	input.CharLimit = 80
	input.Width = 32

	m := Model{
		session:   s,
		prefs:     p,
		prefsPath: prefsPath,
		theme:     themeFor(p),
		input:     input,
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh rebuilds the flattened sidebar rows and clamps the highlight
// indexes after any state change.
func (m *Model) refresh() {
	rows := viewmodel.ActivityRows(m.session.State, m.session.Cursor)
	m.sideRows = m.sideRows[:0]
	for _, row := range rows {
		m.sideRows = append(m.sideRows, sideRow{activityID: row.ID})
		if !row.Expanded {
			continue
		}
		for _, sub := range row.Subs {
			m.sideRows = append(m.sideRows, sideRow{activityID: row.ID, subID: sub.ID})
		}
	}
	m.sideIdx = clamp(m.sideIdx, len(m.sideRows))
	m.goalIdx = clamp(m.goalIdx, len(m.session.State.Goals))
	if m.dayIdx < 0 || m.dayIdx >= 42 {
		m.dayIdx = 0
	}
}

func clamp(idx, length int) int {
	if length == 0 {
		return 0
	}
	if idx >= length {
		return length - 1
	}
	if idx < 0 {
		return 0
	}
	return idx
}
