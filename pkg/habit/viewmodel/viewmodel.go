// Package viewmodel derives renderable projections from the habit state and
// the session cursor so presentation layers can render without re-deriving
// structure all over the codebase.
package viewmodel

import (
	"tableflip.dev/bithab/pkg/calendar"
	"tableflip.dev/bithab/pkg/datekey"
	"tableflip.dev/bithab/pkg/habit"
)

// SubRow is a sub-activity line in the sidebar.
type SubRow struct {
	ID    string
	Name  string
	Color string
}

// ActivityRow is an activity line in the sidebar, with its expansion and
// selection flags resolved against the cursor.
type ActivityRow struct {
	ID       string
	Name     string
	Selected bool
	Expanded bool
	Subs     []SubRow
}

// Dot is one completion marker on a calendar day. For sub-activities it
// carries the sub's color; for activities without sub-activities it is the
// colorless "logged" sentinel.
type Dot struct {
	Color  string
	Logged bool
}

// DayView is one calendar cell annotated with its completion dots.
type DayView struct {
	calendar.DayCell
	Today bool
	Dots  []Dot
}

// MonthView is the visible month projected for the selected activity.
type MonthView struct {
	Month        calendar.Month
	Title        string
	ActivityName string
	Days         []DayView

	// NoSelection is set when no activity is selected; the presentation
	// layer shows the "select an activity" hint instead of a grid.
	NoSelection bool
}

// Pill is one toggle in the day-logging modal.
type Pill struct {
	ID       string
	Name     string
	Color    string
	Selected bool
}

// ActivityRows projects the sidebar list in store order.
func ActivityRows(s *habit.State, cursor habit.Cursor) []ActivityRow {
	rows := make([]ActivityRow, 0, len(s.Activities))
	for _, a := range s.Activities {
		row := ActivityRow{
			ID:       a.ID,
			Name:     a.Name,
			Selected: cursor.SelectedActivityID == a.ID,
			Expanded: cursor.IsExpanded(a.ID),
			Subs:     make([]SubRow, 0, len(a.SubActivities)),
		}
		for _, sub := range a.SubActivities {
			row.Subs = append(row.Subs, SubRow{ID: sub.ID, Name: sub.Name, Color: sub.Color})
		}
		rows = append(rows, row)
	}
	return rows
}

// ProjectMonth annotates the visible month's grid with completion dots for
// the selected activity. Dots follow the activity's sub-activity list order,
// never log-insertion order, so two subs logged the same day always render
// the same way. An activity without sub-activities contributes the sentinel
// logged marker when its own id is in the day's set.
func ProjectMonth(s *habit.State, cursor habit.Cursor, today datekey.Key) MonthView {
	view := MonthView{
		Month: cursor.Visible,
		Title: cursor.Visible.String(),
	}

	activity, ok := s.Activity(cursor.SelectedActivityID)
	if !ok {
		view.NoSelection = true
		return view
	}
	view.ActivityName = activity.Name

	cells := calendar.Grid(cursor.Visible)
	view.Days = make([]DayView, 0, len(cells))
	for _, cell := range cells {
		view.Days = append(view.Days, DayView{
			DayCell: cell,
			Today:   cell.Key == today,
			Dots:    dotsFor(s, activity, cell.Key),
		})
	}
	return view
}

func dotsFor(s *habit.State, activity *habit.Activity, key datekey.Key) []Dot {
	if len(activity.SubActivities) == 0 {
		if s.Logs.Has(key, activity.ID) {
			return []Dot{{Logged: true}}
		}
		return nil
	}
	var dots []Dot
	for _, sub := range activity.SubActivities {
		if s.Logs.Has(key, sub.ID) {
			dots = append(dots, Dot{Color: sub.Color})
		}
	}
	return dots
}

// Pills projects the logging modal for a clicked day: one pill per
// sub-activity of the selected activity, selected iff its id is in the day's
// log set. An activity without sub-activities gets a single pill for itself.
func Pills(s *habit.State, cursor habit.Cursor, key datekey.Key) []Pill {
	activity, ok := s.Activity(cursor.SelectedActivityID)
	if !ok {
		return nil
	}
	if len(activity.SubActivities) == 0 {
		return []Pill{{
			ID:       activity.ID,
			Name:     activity.Name,
			Selected: s.Logs.Has(key, activity.ID),
		}}
	}
	pills := make([]Pill, 0, len(activity.SubActivities))
	for _, sub := range activity.SubActivities {
		pills = append(pills, Pill{
			ID:       sub.ID,
			Name:     sub.Name,
			Color:    sub.Color,
			Selected: s.Logs.Has(key, sub.ID),
		})
	}
	return pills
}
