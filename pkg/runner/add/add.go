// Package add provides the runner logic for creating activities,
// sub-activities, and goals.
package add

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/bithab/pkg/habit/viewmodel"
	"tableflip.dev/bithab/pkg/printers"
	"tableflip.dev/bithab/pkg/session"
)

// What selects the entity being added.
type What string

const (
	Activity What = "activity"
	Sub      What = "sub"
	Goal     What = "goal"
)

type Add struct {
	What What

	// Parent names the owning activity for sub-activity adds.
	Parent string
	Name   string
	Color  string

	Session *session.Session
}

func (n *Add) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not add, no session")
	}
	if n.Name == "" {
		return errors.New("a name is required")
	}

	pp := printers.PrettyPrint{}

	switch n.What {
	case Activity:
		n.Session.Apply(session.Intent{Kind: session.KindAddActivity, Name: n.Name})
		fmt.Println("")
		pp.Title("Activities")
		pp.Activities(viewmodel.ActivityRows(n.Session.State, n.Session.Cursor))

	case Sub:
		parent, ok := n.Session.State.ActivityByName(n.Parent)
		if !ok {
			return fmt.Errorf("no activity named %q", n.Parent)
		}
		n.Session.Apply(session.Intent{
			Kind:       session.KindAddSub,
			ActivityID: parent.ID,
			Name:       n.Name,
			Color:      n.Color,
		})
		fmt.Println("")
		pp.Title("Activities")
		pp.Activities(viewmodel.ActivityRows(n.Session.State, n.Session.Cursor))

	case Goal:
		n.Session.Apply(session.Intent{Kind: session.KindAddGoal, Name: n.Name})
		fmt.Println("")
		pp.Title("Goals")
		pp.Goals(n.Session.State.Goals)

	default:
		return fmt.Errorf("do not know how to add %q", n.What)
	}

	return nil
}
