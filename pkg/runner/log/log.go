// Package log provides the runner logic for toggling a day's completion.
package log

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/bithab/pkg/datekey"
	"tableflip.dev/bithab/pkg/habit/viewmodel"
	"tableflip.dev/bithab/pkg/printers"
	"tableflip.dev/bithab/pkg/session"
)

// Log toggles a sub-activity (or a sub-less activity) on a given day.
type Log struct {
	// Activity names the parent; defaults to the selected activity.
	Activity string

	// Name names the sub-activity to toggle. For activities without
	// sub-activities it may be empty; the activity itself is logged.
	Name string

	// On is the day to toggle; defaults to today.
	On datekey.Key

	Session *session.Session
}

func (n *Log) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not log, no session")
	}

	cursor := n.Session.Cursor
	if n.Activity != "" {
		a, ok := n.Session.State.ActivityByName(n.Activity)
		if !ok {
			return fmt.Errorf("no activity named %q", n.Activity)
		}
		n.Session.Apply(session.Intent{Kind: session.KindSelectActivity, ID: a.ID})
		cursor = n.Session.Cursor
	}

	activity, ok := n.Session.State.Activity(cursor.SelectedActivityID)
	if !ok {
		return errors.New("no activity selected")
	}

	entityID := activity.ID
	if n.Name != "" {
		found := false
		for _, sub := range activity.SubActivities {
			if strings.EqualFold(sub.Name, n.Name) {
				entityID = sub.ID
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("activity %q has no sub-activity named %q", activity.Name, n.Name)
		}
	} else if len(activity.SubActivities) > 0 {
		return fmt.Errorf("activity %q has sub-activities; name the one to log", activity.Name)
	}

	on := n.On
	if on == "" {
		on = n.Session.Today()
	}

	n.Session.Apply(session.Intent{Kind: session.KindToggleLog, Date: on, ID: entityID})

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Pills(fmt.Sprintf("Log for %s", on), viewmodel.Pills(n.Session.State, n.Session.Cursor, on))
	return nil
}
