// Package get provides the runner logic for listing and viewing habit data.
package get

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/bithab/pkg/calendar"
	"tableflip.dev/bithab/pkg/habit/viewmodel"
	"tableflip.dev/bithab/pkg/printers"
	"tableflip.dev/bithab/pkg/session"
)

// What selects the view being printed.
type What string

const (
	Activities What = "activities"
	Goals      What = "goals"
	Calendar   What = "calendar"
)

type Get struct {
	What   What
	ShowID bool

	// Activity overrides the cursor's selected activity for calendar views.
	Activity string

	// Month overrides the cursor's visible month, e.g. "2025-06".
	Month *calendar.Month

	Session *session.Session
}

func (n *Get) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not get, no session")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	switch n.What {
	case Activities:
		pp.Title("Activities")
		pp.Activities(viewmodel.ActivityRows(n.Session.State, n.Session.Cursor))

	case Goals:
		pp.Title("Goals")
		pp.Goals(n.Session.State.Goals)

	case Calendar:
		cursor := n.Session.Cursor
		if n.Activity != "" {
			a, ok := n.Session.State.ActivityByName(n.Activity)
			if !ok {
				return fmt.Errorf("no activity named %q", n.Activity)
			}
			cursor.SelectedActivityID = a.ID
		}
		if n.Month != nil {
			cursor.Visible = *n.Month
		}
		view := viewmodel.ProjectMonth(n.Session.State, cursor, n.Session.Today())
		if view.ActivityName != "" {
			pp.Title(view.ActivityName)
		}
		pp.Month(view)

	default:
		return fmt.Errorf("do not know how to get %q", n.What)
	}

	return nil
}
