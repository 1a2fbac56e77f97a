package habit

import (
	"testing"
	"time"

	"tableflip.dev/bithab/pkg/datekey"
)

func TestToggleLogIsAnInvolution(t *testing.T) {
	s := NewState()
	a := s.AddActivity("Exercise")
	day := datekey.New(2025, time.June, 15)

	if !s.ToggleLog(day, a.ID) {
		t.Fatalf("first toggle should log the id")
	}
	if !s.Logs.Has(day, a.ID) {
		t.Fatalf("id should be logged after the first toggle")
	}
	if s.ToggleLog(day, a.ID) {
		t.Fatalf("second toggle should unlog the id")
	}
	if _, present := s.Logs[day]; present {
		t.Fatalf("emptied day should leave the index entirely")
	}
}

func TestToggleLogKeepsOtherIDs(t *testing.T) {
	s := NewState()
	day := datekey.New(2025, time.June, 15)
	s.ToggleLog(day, "a")
	s.ToggleLog(day, "b")
	s.ToggleLog(day, "a")

	if s.Logs.Has(day, "a") {
		t.Fatalf("a should be unlogged")
	}
	if !s.Logs.Has(day, "b") {
		t.Fatalf("b should survive a's toggle")
	}
}

func TestRemoveActivityCascadesLogs(t *testing.T) {
	s := NewState()
	a := s.AddActivity("Learning")
	sub, ok := s.AddSubActivity(a.ID, "Reading", "#3B82F6")
	if !ok {
		t.Fatalf("expected sub-activity added")
	}
	other := s.AddActivity("Exercise")

	day := datekey.New(2025, time.June, 15)
	s.ToggleLog(day, sub.ID)
	s.ToggleLog(day, other.ID)

	if !s.RemoveActivity(a.ID) {
		t.Fatalf("expected removal")
	}
	if _, ok := s.Activity(a.ID); ok {
		t.Fatalf("activity should be gone")
	}
	if s.Logs.Has(day, sub.ID) {
		t.Fatalf("child sub-activity logs should be pruned")
	}
	if !s.Logs.Has(day, other.ID) {
		t.Fatalf("unrelated logs should survive")
	}
}

func TestRemoveSubActivityPrunesOnlyItsLogs(t *testing.T) {
	s := NewState()
	a := s.AddActivity("Learning")
	reading, _ := s.AddSubActivity(a.ID, "Reading", "#3B82F6")
	fiction, _ := s.AddSubActivity(a.ID, "Fiction", "#F59E0B")

	day := datekey.New(2025, time.June, 15)
	s.ToggleLog(day, reading.ID)
	s.ToggleLog(day, fiction.ID)

	if !s.RemoveSubActivity(a.ID, reading.ID) {
		t.Fatalf("expected removal")
	}
	if s.Logs.Has(day, reading.ID) {
		t.Fatalf("removed sub's logs should be pruned")
	}
	if !s.Logs.Has(day, fiction.ID) {
		t.Fatalf("sibling logs should survive")
	}
	got, _ := s.Activity(a.ID)
	if len(got.SubActivities) != 1 || got.SubActivities[0].ID != fiction.ID {
		t.Fatalf("unexpected sub-activities after removal: %+v", got.SubActivities)
	}
}

func TestAddSubActivityUnknownParentIsANoOp(t *testing.T) {
	s := NewState()
	if _, ok := s.AddSubActivity("missing", "Reading", ""); ok {
		t.Fatalf("unknown parent should not add anything")
	}
	if len(s.Activities) != 0 {
		t.Fatalf("state should be untouched")
	}
}

func TestHasEntity(t *testing.T) {
	s := NewState()
	a := s.AddActivity("Learning")
	sub, _ := s.AddSubActivity(a.ID, "Reading", "#3B82F6")
	g := s.AddGoal("Ship it")

	if !s.HasEntity(a.ID) || !s.HasEntity(sub.ID) {
		t.Fatalf("activities and sub-activities are loggable entities")
	}
	if s.HasEntity(g.ID) {
		t.Fatalf("goals are not loggable")
	}
	if s.HasEntity("missing") || s.HasEntity("") {
		t.Fatalf("unknown ids are not entities")
	}
}

func TestGoalLifecycle(t *testing.T) {
	s := NewState()
	g := s.AddGoal("Read 12 books")
	if g.Completed {
		t.Fatalf("new goals start uncompleted")
	}
	if !s.ToggleGoal(g.ID) {
		t.Fatalf("expected toggle")
	}
	got, _ := s.Goal(g.ID)
	if !got.Completed {
		t.Fatalf("goal should be completed after toggle")
	}
	if !s.RemoveGoal(g.ID) {
		t.Fatalf("expected removal")
	}
	if s.RemoveGoal(g.ID) {
		t.Fatalf("second removal should be a no-op")
	}
}

func TestByNameLookupsIgnoreCase(t *testing.T) {
	s := NewState()
	s.AddActivity("Learning")
	s.AddGoal("Ship it")

	if _, ok := s.ActivityByName("learning"); !ok {
		t.Fatalf("activity lookup should ignore case")
	}
	if _, ok := s.GoalByName("SHIP IT"); !ok {
		t.Fatalf("goal lookup should ignore case")
	}
	if _, ok := s.ActivityByName("missing"); ok {
		t.Fatalf("unexpected match")
	}
}

func TestNormalizeColor(t *testing.T) {
	if got := NormalizeColor("#F59E0B"); got != "#F59E0B" {
		t.Fatalf("valid colors pass through, got %s", got)
	}
	if got := NormalizeColor("chartreuse"); got != DefaultColor {
		t.Fatalf("invalid colors default, got %s", got)
	}
	if got := NormalizeColor(""); got != DefaultColor {
		t.Fatalf("empty color defaults, got %s", got)
	}
}
