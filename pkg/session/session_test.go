package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"tableflip.dev/bithab/pkg/datekey"
	"tableflip.dev/bithab/pkg/remote"
)

// memoryDocs is an in-memory DocumentStore for tests.
type memoryDocs struct {
	docs map[string][]byte
}

func newMemoryDocs() *memoryDocs {
	return &memoryDocs{docs: map[string][]byte{}}
}

func (m *memoryDocs) Get(_ context.Context, key string) ([]byte, bool, error) {
	data, ok := m.docs[key]
	return data, ok, nil
}

func (m *memoryDocs) Set(_ context.Context, key string, doc []byte) error {
	m.docs[key] = append([]byte(nil), doc...)
	return nil
}

func (m *memoryDocs) Update(_ context.Context, key string, fields map[string]json.RawMessage) error {
	merged := map[string]json.RawMessage{}
	if data, ok := m.docs[key]; ok {
		if err := json.Unmarshal(data, &merged); err != nil {
			return err
		}
	}
	for k, v := range fields {
		merged[k] = v
	}
	data, err := json.Marshal(merged)
	if err != nil {
		return err
	}
	m.docs[key] = data
	return nil
}

func (m *memoryDocs) Watch(context.Context) (<-chan remote.Event, error) {
	ch := make(chan remote.Event)
	close(ch)
	return ch, nil
}

func fixedNow() time.Time {
	return time.Date(2025, time.June, 20, 12, 0, 0, 0, time.UTC)
}

func open(t *testing.T, docs *memoryDocs) *Session {
	t.Helper()
	s, err := Open(context.Background(), Options{
		Docs:          docs,
		UserID:        "amy",
		PersistCursor: true,
		Now:           fixedNow,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func TestOpenRequiresUser(t *testing.T) {
	if _, err := Open(context.Background(), Options{Docs: newMemoryDocs()}); err == nil {
		t.Fatalf("expected an error without a user")
	}
}

func TestOpenFirstRun(t *testing.T) {
	s := open(t, newMemoryDocs())
	defer s.Close()

	if len(s.State.Activities) != 0 || len(s.State.Goals) != 0 {
		t.Fatalf("first run should be empty: %+v", s.State)
	}
	if s.Cursor.Visible.Year != 2025 || s.Cursor.Visible.Month != time.June {
		t.Fatalf("visible month should default to the current month: %+v", s.Cursor.Visible)
	}
	if s.Today() != datekey.New(2025, time.June, 20) {
		t.Fatalf("unexpected today: %s", s.Today())
	}
}

func TestAddActivityAutoSelectsAndExpands(t *testing.T) {
	s := open(t, newMemoryDocs())
	defer s.Close()

	if effect := s.Apply(Intent{Kind: KindAddActivity, Name: "Learning"}); !effect.Changed {
		t.Fatalf("expected a change")
	}
	a := s.State.Activities[0]
	if s.Cursor.SelectedActivityID != a.ID {
		t.Fatalf("new activity should be selected")
	}
	if !s.Cursor.IsExpanded(a.ID) {
		t.Fatalf("new activity should be expanded")
	}
}

func TestSelectingSelectedActivityTogglesExpansion(t *testing.T) {
	s := open(t, newMemoryDocs())
	defer s.Close()

	s.Apply(Intent{Kind: KindAddActivity, Name: "Learning"})
	a := s.State.Activities[0]

	s.Apply(Intent{Kind: KindSelectActivity, ID: a.ID})
	if s.Cursor.IsExpanded(a.ID) {
		t.Fatalf("re-selecting should collapse")
	}
	s.Apply(Intent{Kind: KindSelectActivity, ID: a.ID})
	if !s.Cursor.IsExpanded(a.ID) {
		t.Fatalf("re-selecting again should expand")
	}
}

func TestToggleExpand(t *testing.T) {
	s := open(t, newMemoryDocs())
	defer s.Close()

	s.Apply(Intent{Kind: KindAddActivity, Name: "Learning"})
	a := s.State.Activities[0]

	s.Apply(Intent{Kind: KindToggleExpand, ID: a.ID})
	if s.Cursor.IsExpanded(a.ID) {
		t.Fatalf("toggle should collapse the auto-expanded activity")
	}
	s.Apply(Intent{Kind: KindToggleExpand, ID: a.ID})
	if !s.Cursor.IsExpanded(a.ID) {
		t.Fatalf("toggle should expand again")
	}
}

func TestRemoveActivityNeedsConfirmation(t *testing.T) {
	s := open(t, newMemoryDocs())
	defer s.Close()

	s.Apply(Intent{Kind: KindAddActivity, Name: "Learning"})
	a := s.State.Activities[0]

	effect := s.Apply(Intent{Kind: KindRemoveActivity, ID: a.ID})
	if !effect.NeedsConfirm || effect.Changed {
		t.Fatalf("unconfirmed destructive intent must not mutate: %+v", effect)
	}
	if effect.Prompt == "" {
		t.Fatalf("expected a confirmation prompt")
	}
	if len(s.State.Activities) != 1 {
		t.Fatalf("state should be untouched")
	}

	effect = s.Apply(Intent{Kind: KindRemoveActivity, ID: a.ID, Confirmed: true})
	if !effect.Changed {
		t.Fatalf("confirmed intent should apply")
	}
	if len(s.State.Activities) != 0 {
		t.Fatalf("activity should be gone")
	}
	if s.Cursor.SelectedActivityID != "" {
		t.Fatalf("selection should self-heal: %q", s.Cursor.SelectedActivityID)
	}
}

func TestRemoveActivitySelfHealsToSurvivor(t *testing.T) {
	s := open(t, newMemoryDocs())
	defer s.Close()

	s.Apply(Intent{Kind: KindAddActivity, Name: "Learning"})
	s.Apply(Intent{Kind: KindAddActivity, Name: "Exercise"})
	second := s.State.Activities[1]

	s.Apply(Intent{Kind: KindRemoveActivity, ID: second.ID, Confirmed: true})
	if s.Cursor.SelectedActivityID != s.State.Activities[0].ID {
		t.Fatalf("selection should fall back to the first activity")
	}
}

func TestUnknownIDsAreNoOps(t *testing.T) {
	s := open(t, newMemoryDocs())
	defer s.Close()

	if effect := s.Apply(Intent{Kind: KindSelectActivity, ID: "missing"}); effect.Changed {
		t.Fatalf("unknown select should be a no-op")
	}
	if effect := s.Apply(Intent{Kind: KindToggleGoal, ID: "missing"}); effect.Changed {
		t.Fatalf("unknown goal toggle should be a no-op")
	}
	if effect := s.Apply(Intent{Kind: KindRemoveActivity, ID: "missing"}); effect.Changed || effect.NeedsConfirm {
		t.Fatalf("unknown remove should be a no-op, not a prompt")
	}
}

func TestToggleLogRejectsUnknownEntities(t *testing.T) {
	s := open(t, newMemoryDocs())
	defer s.Close()

	s.Apply(Intent{Kind: KindAddActivity, Name: "Learning"})
	a := s.State.Activities[0]
	s.Apply(Intent{Kind: KindAddSub, ActivityID: a.ID, Name: "Reading", Color: "#3B82F6"})
	sub := s.State.Activities[0].SubActivities[0]
	day := datekey.New(2025, time.June, 15)

	if effect := s.Apply(Intent{Kind: KindToggleLog, Date: day, ID: "stale"}); effect.Changed {
		t.Fatalf("unknown entity should be a no-op")
	}
	if len(s.State.Logs) != 0 {
		t.Fatalf("no dangling id may enter the log index: %+v", s.State.Logs)
	}

	// A sub-activity removed out from under a pending intent behaves the
	// same way.
	s.Apply(Intent{Kind: KindRemoveSub, ActivityID: a.ID, ID: sub.ID, Confirmed: true})
	if effect := s.Apply(Intent{Kind: KindToggleLog, Date: day, ID: sub.ID}); effect.Changed {
		t.Fatalf("removed entity should be a no-op")
	}
	if len(s.State.Logs) != 0 {
		t.Fatalf("no dangling id may enter the log index: %+v", s.State.Logs)
	}

	if effect := s.Apply(Intent{Kind: KindToggleLog, Date: day, ID: a.ID}); !effect.Changed {
		t.Fatalf("live entity should still log")
	}
}

func TestMonthNavigation(t *testing.T) {
	s := open(t, newMemoryDocs())
	defer s.Close()

	s.Apply(Intent{Kind: KindNextMonth})
	if s.Cursor.Visible.Month != time.July {
		t.Fatalf("unexpected month: %v", s.Cursor.Visible)
	}
	s.Apply(Intent{Kind: KindPrevMonth})
	s.Apply(Intent{Kind: KindPrevMonth})
	if s.Cursor.Visible.Month != time.May {
		t.Fatalf("unexpected month: %v", s.Cursor.Visible)
	}
}

func TestStateSurvivesReopen(t *testing.T) {
	docs := newMemoryDocs()

	s := open(t, docs)
	s.Apply(Intent{Kind: KindAddActivity, Name: "Learning"})
	a := s.State.Activities[0]
	s.Apply(Intent{Kind: KindAddSub, ActivityID: a.ID, Name: "Reading", Color: "#3B82F6"})
	sub := s.State.Activities[0].SubActivities[0]
	s.Apply(Intent{Kind: KindToggleLog, Date: datekey.New(2025, time.June, 15), ID: sub.ID})
	s.Apply(Intent{Kind: KindAddGoal, Name: "Ship it"})
	s.Close()

	reopened := open(t, docs)
	defer reopened.Close()

	if len(reopened.State.Activities) != 1 || reopened.State.Activities[0].Name != "Learning" {
		t.Fatalf("activities lost across sessions: %+v", reopened.State.Activities)
	}
	if !reopened.State.Logs.Has(datekey.New(2025, time.June, 15), sub.ID) {
		t.Fatalf("log entry lost across sessions")
	}
	if len(reopened.State.Goals) != 1 {
		t.Fatalf("goals lost across sessions: %+v", reopened.State.Goals)
	}
}

func TestCursorSurvivesReopen(t *testing.T) {
	docs := newMemoryDocs()

	s := open(t, docs)
	s.Apply(Intent{Kind: KindAddActivity, Name: "Learning"})
	s.Apply(Intent{Kind: KindAddActivity, Name: "Exercise"})
	second := s.State.Activities[1]
	s.Apply(Intent{Kind: KindSelectActivity, ID: second.ID})
	s.Apply(Intent{Kind: KindNextMonth})
	s.Close()

	reopened := open(t, docs)
	defer reopened.Close()

	if reopened.Cursor.SelectedActivityID != second.ID {
		t.Fatalf("selection should persist across sessions")
	}
	if reopened.Cursor.Visible.Month != time.July {
		t.Fatalf("visible month should persist across sessions: %+v", reopened.Cursor.Visible)
	}
}

func TestLoadNoticeOnTransportError(t *testing.T) {
	var notices []Notice
	_, err := Open(context.Background(), Options{
		Docs:   failingDocs{},
		UserID: "amy",
		Notify: func(n Notice) { notices = append(notices, n) },
		Now:    fixedNow,
	})
	if err != nil {
		t.Fatalf("load failure must not fail sign-in: %v", err)
	}
	if len(notices) != 1 || !notices[0].Err {
		t.Fatalf("expected one error notice, got %+v", notices)
	}
}

type failingDocs struct{}

func (failingDocs) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, context.DeadlineExceeded
}

func (failingDocs) Set(context.Context, string, []byte) error { return nil }

func (failingDocs) Update(context.Context, string, map[string]json.RawMessage) error { return nil }

func (failingDocs) Watch(context.Context) (<-chan remote.Event, error) {
	ch := make(chan remote.Event)
	close(ch)
	return ch, nil
}
