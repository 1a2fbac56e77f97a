package viewmodel

import (
	"testing"
	"time"

	"tableflip.dev/bithab/pkg/calendar"
	"tableflip.dev/bithab/pkg/datekey"
	"tableflip.dev/bithab/pkg/habit"
)

func juneCursor(selected string) habit.Cursor {
	return habit.Cursor{
		SelectedActivityID: selected,
		Visible:            calendar.Month{Year: 2025, Month: time.June},
	}
}

func dayByKey(t *testing.T, view MonthView, key datekey.Key) DayView {
	t.Helper()
	for _, day := range view.Days {
		if day.Key == key {
			return day
		}
	}
	t.Fatalf("day %s not in view", key)
	return DayView{}
}

func TestProjectMonthDotForLoggedSub(t *testing.T) {
	s := habit.NewState()
	a := s.AddActivity("Learning")
	reading, _ := s.AddSubActivity(a.ID, "Reading", "#3B82F6")
	s.AddSubActivity(a.ID, "Fiction", "#F59E0B")

	day := datekey.New(2025, time.June, 15)
	s.ToggleLog(day, reading.ID)

	view := ProjectMonth(s, juneCursor(a.ID), datekey.New(2025, time.June, 20))
	if view.NoSelection {
		t.Fatalf("an activity is selected")
	}
	if view.ActivityName != "Learning" {
		t.Fatalf("unexpected activity name: %s", view.ActivityName)
	}
	if view.Title != "June 2025" {
		t.Fatalf("unexpected title: %s", view.Title)
	}

	got := dayByKey(t, view, day)
	if len(got.Dots) != 1 {
		t.Fatalf("expected one dot, got %+v", got.Dots)
	}
	if got.Dots[0].Color != "#3B82F6" || got.Dots[0].Logged {
		t.Fatalf("unexpected dot: %+v", got.Dots[0])
	}
}

func TestProjectMonthDotsFollowListOrder(t *testing.T) {
	s := habit.NewState()
	a := s.AddActivity("Learning")
	reading, _ := s.AddSubActivity(a.ID, "Reading", "#3B82F6")
	fiction, _ := s.AddSubActivity(a.ID, "Fiction", "#F59E0B")

	// Log in reverse list order; dots still render list-first.
	day := datekey.New(2025, time.June, 15)
	s.ToggleLog(day, fiction.ID)
	s.ToggleLog(day, reading.ID)

	view := ProjectMonth(s, juneCursor(a.ID), datekey.New(2025, time.June, 20))
	got := dayByKey(t, view, day)
	if len(got.Dots) != 2 {
		t.Fatalf("expected two dots, got %+v", got.Dots)
	}
	if got.Dots[0].Color != "#3B82F6" || got.Dots[1].Color != "#F59E0B" {
		t.Fatalf("dots should follow sub-activity list order: %+v", got.Dots)
	}
}

func TestProjectMonthSentinelForSubLessActivity(t *testing.T) {
	s := habit.NewState()
	a := s.AddActivity("Meditate")
	day := datekey.New(2025, time.June, 15)
	s.ToggleLog(day, a.ID)

	view := ProjectMonth(s, juneCursor(a.ID), datekey.New(2025, time.June, 20))
	got := dayByKey(t, view, day)
	if len(got.Dots) != 1 || !got.Dots[0].Logged || got.Dots[0].Color != "" {
		t.Fatalf("expected the colorless logged sentinel, got %+v", got.Dots)
	}
}

func TestProjectMonthNoSelection(t *testing.T) {
	s := habit.NewState()
	view := ProjectMonth(s, juneCursor(""), datekey.New(2025, time.June, 20))
	if !view.NoSelection {
		t.Fatalf("expected NoSelection")
	}
	if len(view.Days) != 0 {
		t.Fatalf("no grid without a selection")
	}
	if view.Title != "June 2025" {
		t.Fatalf("title should still render: %s", view.Title)
	}
}

func TestProjectMonthMarksToday(t *testing.T) {
	s := habit.NewState()
	a := s.AddActivity("Meditate")
	today := datekey.New(2025, time.June, 20)

	view := ProjectMonth(s, juneCursor(a.ID), today)
	if !dayByKey(t, view, today).Today {
		t.Fatalf("today should be marked")
	}
	if dayByKey(t, view, datekey.New(2025, time.June, 19)).Today {
		t.Fatalf("only one day is today")
	}
}

func TestPills(t *testing.T) {
	s := habit.NewState()
	a := s.AddActivity("Learning")
	reading, _ := s.AddSubActivity(a.ID, "Reading", "#3B82F6")
	s.AddSubActivity(a.ID, "Fiction", "#F59E0B")

	day := datekey.New(2025, time.June, 15)
	s.ToggleLog(day, reading.ID)

	pills := Pills(s, juneCursor(a.ID), day)
	if len(pills) != 2 {
		t.Fatalf("expected one pill per sub-activity, got %+v", pills)
	}
	if !pills[0].Selected || pills[0].Name != "Reading" {
		t.Fatalf("logged sub should be selected: %+v", pills[0])
	}
	if pills[1].Selected {
		t.Fatalf("unlogged sub should not be selected: %+v", pills[1])
	}
}

func TestPillsForSubLessActivity(t *testing.T) {
	s := habit.NewState()
	a := s.AddActivity("Meditate")

	pills := Pills(s, juneCursor(a.ID), datekey.New(2025, time.June, 15))
	if len(pills) != 1 || pills[0].ID != a.ID || pills[0].Name != "Meditate" {
		t.Fatalf("sub-less activity should get a single self pill: %+v", pills)
	}
	if pills[0].Selected {
		t.Fatalf("nothing is logged yet")
	}
}

func TestActivityRowsFlags(t *testing.T) {
	s := habit.NewState()
	a := s.AddActivity("Learning")
	s.AddSubActivity(a.ID, "Reading", "#3B82F6")
	b := s.AddActivity("Exercise")

	cursor := juneCursor(a.ID)
	cursor.Expand(a.ID)

	rows := ActivityRows(s, cursor)
	if len(rows) != 2 {
		t.Fatalf("expected two rows, got %d", len(rows))
	}
	if !rows[0].Selected || !rows[0].Expanded {
		t.Fatalf("first row should be selected and expanded: %+v", rows[0])
	}
	if len(rows[0].Subs) != 1 || rows[0].Subs[0].Name != "Reading" {
		t.Fatalf("unexpected subs: %+v", rows[0].Subs)
	}
	if rows[1].ID != b.ID || rows[1].Selected || rows[1].Expanded {
		t.Fatalf("second row should be plain: %+v", rows[1])
	}
}
