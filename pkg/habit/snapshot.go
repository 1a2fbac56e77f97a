package habit

import (
	"tableflip.dev/bithab/pkg/datekey"
)

// Snapshot is the full serializable state of the store at one instant. A
// snapshot saved and loaded back must reconstruct an observably equal store.
type Snapshot struct {
	Activities []Activity `json:"activities"`
	Goals      []Goal     `json:"goals"`
	Logs       LogIndex   `json:"logs"`
}

// EmptySnapshot is the first-run state: no activities, no goals, no logs.
func EmptySnapshot() Snapshot {
	return Snapshot{
		Activities: []Activity{},
		Goals:      []Goal{},
		Logs:       make(LogIndex),
	}
}

// Snapshot returns a deep copy of the current state, safe to hand to the save
// queue while the store keeps mutating.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Activities: make([]Activity, len(s.Activities)),
		Goals:      append([]Goal(nil), s.Goals...),
		Logs:       s.Logs.clone(),
	}
	for i, a := range s.Activities {
		a.SubActivities = append([]SubActivity(nil), a.SubActivities...)
		snap.Activities[i] = a
	}
	return snap
}

// Restore replaces the store contents with the snapshot.
func (s *State) Restore(snap Snapshot) {
	snap.Normalize()
	s.Activities = snap.Activities
	s.Goals = snap.Goals
	s.Logs = snap.Logs
}

// Normalize repairs a snapshot read from a remote document: nil collections
// become empty, legacy unpadded day keys are upgraded, and the sparse-index
// invariant (a day present iff non-empty) is restored. Unparseable day keys
// are dropped rather than failing the whole load.
func (snap *Snapshot) Normalize() {
	if snap.Activities == nil {
		snap.Activities = []Activity{}
	}
	for i := range snap.Activities {
		if snap.Activities[i].SubActivities == nil {
			snap.Activities[i].SubActivities = []SubActivity{}
		}
	}
	if snap.Goals == nil {
		snap.Goals = []Goal{}
	}

	logs := make(LogIndex, len(snap.Logs))
	for raw, ids := range snap.Logs {
		if len(ids) == 0 {
			continue
		}
		key, err := datekey.Parse(string(raw))
		if err != nil {
			continue
		}
		for _, id := range ids {
			if id == "" || logs.Has(key, id) {
				continue
			}
			logs[key] = append(logs[key], id)
		}
	}
	snap.Logs = logs
}
