// Package complete provides the runner logic for toggling goal completion.
package complete

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/bithab/pkg/printers"
	"tableflip.dev/bithab/pkg/session"
)

// Complete toggles the completion flag of the named goal.
type Complete struct {
	Name string

	Session *session.Session
}

func (n *Complete) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not complete, no session")
	}

	g, ok := n.Session.State.GoalByName(n.Name)
	if !ok {
		return fmt.Errorf("no goal named %q", n.Name)
	}
	n.Session.Apply(session.Intent{Kind: session.KindToggleGoal, ID: g.ID})

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Goals")
	pp.Goals(n.Session.State.Goals)
	return nil
}
