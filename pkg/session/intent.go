package session

import (
	"fmt"

	"tableflip.dev/bithab/pkg/datekey"
)

// Kind names a structured user intent handed back by the presentation layer.
type Kind string

const (
	KindSelectActivity Kind = "select-activity"
	KindToggleExpand   Kind = "toggle-expand"
	KindAddActivity    Kind = "add-activity"
	KindRemoveActivity Kind = "remove-activity"
	KindAddSub         Kind = "add-sub-activity"
	KindRemoveSub      Kind = "remove-sub-activity"
	KindAddGoal        Kind = "add-goal"
	KindToggleGoal     Kind = "toggle-goal"
	KindRemoveGoal     Kind = "remove-goal"
	KindToggleLog      Kind = "toggle-log"
	KindPrevMonth      Kind = "prev-month"
	KindNextMonth      Kind = "next-month"
)

// Intent is one user action. Fields are used per kind: ID targets an entity,
// ActivityID names the parent for sub-activity operations, Date carries the
// clicked day for log toggles.
type Intent struct {
	Kind       Kind
	ID         string
	ActivityID string
	Name       string
	Color      string
	Date       datekey.Key

	// Confirmed marks a destructive intent the user already approved.
	// Destructive intents without it do not mutate; Apply answers with a
	// confirmation prompt instead.
	Confirmed bool
}

// Effect tells the presentation layer what happened.
type Effect struct {
	// Changed is set when state or cursor changed and views need re-deriving.
	Changed bool

	// NeedsConfirm is set with Prompt when a destructive intent arrived
	// unconfirmed. Resubmitting the intent with Confirmed applies it;
	// dropping it leaves state untouched.
	NeedsConfirm bool
	Prompt       string
}

var none = Effect{}

// Apply maps an intent to store mutations, cursor updates, and queued saves.
// Unknown ids are no-ops, never user-visible errors.
func (s *Session) Apply(in Intent) Effect {
	switch in.Kind {
	case KindSelectActivity:
		return s.selectActivity(in.ID)
	case KindToggleExpand:
		return s.toggleExpand(in.ID)
	case KindAddActivity:
		return s.addActivity(in.Name)
	case KindRemoveActivity:
		return s.removeActivity(in)
	case KindAddSub:
		return s.addSub(in.ActivityID, in.Name, in.Color)
	case KindRemoveSub:
		return s.removeSub(in)
	case KindAddGoal:
		return s.addGoal(in.Name)
	case KindToggleGoal:
		return s.toggleGoal(in.ID)
	case KindRemoveGoal:
		return s.removeGoal(in)
	case KindToggleLog:
		return s.toggleLog(in.Date, in.ID)
	case KindPrevMonth:
		s.Cursor.Visible = s.Cursor.Visible.Prev()
		s.saveCursor()
		return Effect{Changed: true}
	case KindNextMonth:
		s.Cursor.Visible = s.Cursor.Visible.Next()
		s.saveCursor()
		return Effect{Changed: true}
	}
	return none
}

func (s *Session) selectActivity(id string) Effect {
	if _, ok := s.State.Activity(id); !ok {
		return none
	}
	if s.Cursor.SelectedActivityID == id {
		// Clicking the selected activity toggles its expansion.
		s.Cursor.ToggleExpanded(id)
	} else {
		s.Cursor.SelectedActivityID = id
		s.Cursor.Expand(id)
	}
	s.saveCursor()
	return Effect{Changed: true}
}

func (s *Session) toggleExpand(id string) Effect {
	if _, ok := s.State.Activity(id); !ok {
		return none
	}
	s.Cursor.ToggleExpanded(id)
	s.saveCursor()
	return Effect{Changed: true}
}

func (s *Session) addActivity(name string) Effect {
	if name == "" {
		return none
	}
	a := s.State.AddActivity(name)
	s.Cursor.SelectedActivityID = a.ID
	s.Cursor.Expand(a.ID)
	s.saveState()
	return Effect{Changed: true}
}

func (s *Session) removeActivity(in Intent) Effect {
	a, ok := s.State.Activity(in.ID)
	if !ok {
		return none
	}
	if !in.Confirmed {
		return Effect{
			NeedsConfirm: true,
			Prompt:       fmt.Sprintf("Delete %q and all its data?", a.Name),
		}
	}
	s.State.RemoveActivity(in.ID)
	s.Cursor.SelfHeal(s.State.Activities)
	s.saveState()
	return Effect{Changed: true}
}

func (s *Session) addSub(activityID, name, color string) Effect {
	if name == "" {
		return none
	}
	if _, ok := s.State.AddSubActivity(activityID, name, color); !ok {
		return none
	}
	s.saveState()
	return Effect{Changed: true}
}

func (s *Session) removeSub(in Intent) Effect {
	a, ok := s.State.Activity(in.ActivityID)
	if !ok {
		return none
	}
	sub, ok := a.Sub(in.ID)
	if !ok {
		return none
	}
	if !in.Confirmed {
		return Effect{
			NeedsConfirm: true,
			Prompt:       fmt.Sprintf("Delete sub-activity %q?", sub.Name),
		}
	}
	s.State.RemoveSubActivity(in.ActivityID, in.ID)
	s.saveState()
	return Effect{Changed: true}
}

func (s *Session) addGoal(name string) Effect {
	if name == "" {
		return none
	}
	s.State.AddGoal(name)
	s.saveState()
	return Effect{Changed: true}
}

func (s *Session) toggleGoal(id string) Effect {
	if !s.State.ToggleGoal(id) {
		return none
	}
	s.saveState()
	return Effect{Changed: true}
}

func (s *Session) removeGoal(in Intent) Effect {
	g, ok := s.State.Goal(in.ID)
	if !ok {
		return none
	}
	if !in.Confirmed {
		return Effect{
			NeedsConfirm: true,
			Prompt:       fmt.Sprintf("Are you sure you want to delete goal %q?", g.Name),
		}
	}
	s.State.RemoveGoal(in.ID)
	s.saveState()
	return Effect{Changed: true}
}

func (s *Session) toggleLog(key datekey.Key, entityID string) Effect {
	// A stale intent naming a removed entity must not plant a dangling id
	// in the log index.
	if key == "" || !s.State.HasEntity(entityID) {
		return none
	}
	s.State.ToggleLog(key, entityID)
	s.saveState()
	return Effect{Changed: true}
}
