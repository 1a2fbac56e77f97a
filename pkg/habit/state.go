package habit

import (
	"strings"

	"tableflip.dev/bithab/pkg/datekey"
)

// State is the entity store: all business data for one session, mutated only
// through its methods. Mutations are synchronous and purely in-memory;
// persistence is the sync engine's concern, and State never reaches the
// network. Unknown-id mutations are no-ops so callers can treat not-found as
// a non-event.
type State struct {
	Activities []Activity
	Goals      []Goal
	Logs       LogIndex
}

// NewState returns an empty store.
func NewState() *State {
	return &State{Logs: make(LogIndex)}
}

// Activity returns the activity with the given id.
func (s *State) Activity(id string) (*Activity, bool) {
	for i := range s.Activities {
		if s.Activities[i].ID == id {
			return &s.Activities[i], true
		}
	}
	return nil, false
}

// ActivityByName returns the first activity whose name matches, ignoring case.
func (s *State) ActivityByName(name string) (*Activity, bool) {
	for i := range s.Activities {
		if strings.EqualFold(s.Activities[i].Name, name) {
			return &s.Activities[i], true
		}
	}
	return nil, false
}

// HasEntity reports whether id names a live activity or sub-activity, the
// only entities allowed in the log index.
func (s *State) HasEntity(id string) bool {
	for i := range s.Activities {
		if s.Activities[i].ID == id {
			return true
		}
		for _, sub := range s.Activities[i].SubActivities {
			if sub.ID == id {
				return true
			}
		}
	}
	return false
}

// Goal returns the goal with the given id.
func (s *State) Goal(id string) (*Goal, bool) {
	for i := range s.Goals {
		if s.Goals[i].ID == id {
			return &s.Goals[i], true
		}
	}
	return nil, false
}

// GoalByName returns the first goal whose name matches, ignoring case.
func (s *State) GoalByName(name string) (*Goal, bool) {
	for i := range s.Goals {
		if strings.EqualFold(s.Goals[i].Name, name) {
			return &s.Goals[i], true
		}
	}
	return nil, false
}

// AddActivity appends a new activity with an empty sub-activity list.
func (s *State) AddActivity(name string) Activity {
	a := Activity{ID: NewID(), Name: strings.TrimSpace(name), SubActivities: []SubActivity{}}
	s.Activities = append(s.Activities, a)
	return a
}

// RemoveActivity deletes the activity and, atomically with respect to
// observers, every log entry referencing its id or any child sub-activity id.
// Days that become empty leave the index entirely.
func (s *State) RemoveActivity(id string) bool {
	a, ok := s.Activity(id)
	if !ok {
		return false
	}

	gone := map[string]bool{a.ID: true}
	for _, sub := range a.SubActivities {
		gone[sub.ID] = true
	}

	kept := s.Activities[:0]
	for _, act := range s.Activities {
		if act.ID != id {
			kept = append(kept, act)
		}
	}
	s.Activities = kept
	s.Logs.Prune(gone)
	return true
}

// AddSubActivity appends a named, colored child to the activity. It reports
// ok=false without mutating anything when the parent id is unknown.
func (s *State) AddSubActivity(activityID, name, color string) (SubActivity, bool) {
	a, ok := s.Activity(activityID)
	if !ok {
		return SubActivity{}, false
	}
	sub := SubActivity{ID: NewID(), Name: strings.TrimSpace(name), Color: NormalizeColor(color)}
	a.SubActivities = append(a.SubActivities, sub)
	return sub, true
}

// RemoveSubActivity deletes the child and cascades log pruning as
// RemoveActivity does.
func (s *State) RemoveSubActivity(activityID, subID string) bool {
	a, ok := s.Activity(activityID)
	if !ok {
		return false
	}
	for i := range a.SubActivities {
		if a.SubActivities[i].ID == subID {
			a.SubActivities = append(a.SubActivities[:i], a.SubActivities[i+1:]...)
			s.Logs.Prune(map[string]bool{subID: true})
			return true
		}
	}
	return false
}

// AddGoal appends a new, uncompleted goal.
func (s *State) AddGoal(name string) Goal {
	g := Goal{ID: NewID(), Name: strings.TrimSpace(name)}
	s.Goals = append(s.Goals, g)
	return g
}

// ToggleGoal flips the goal's completion flag.
func (s *State) ToggleGoal(id string) bool {
	g, ok := s.Goal(id)
	if !ok {
		return false
	}
	g.Completed = !g.Completed
	return true
}

// RemoveGoal deletes the goal. Goals never appear in the log index, so there
// is nothing to cascade.
func (s *State) RemoveGoal(id string) bool {
	for i := range s.Goals {
		if s.Goals[i].ID == id {
			s.Goals = append(s.Goals[:i], s.Goals[i+1:]...)
			return true
		}
	}
	return false
}

// ToggleLog flips membership of entityID in the keyed day's log set and
// reports whether the entity is logged after the call.
func (s *State) ToggleLog(key datekey.Key, entityID string) bool {
	if s.Logs == nil {
		s.Logs = make(LogIndex)
	}
	return s.Logs.Toggle(key, entityID)
}
