// Package remove provides the runner logic for deleting activities,
// sub-activities, and goals, including their confirmation step.
package remove

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"tableflip.dev/bithab/pkg/habit/viewmodel"
	"tableflip.dev/bithab/pkg/printers"
	"tableflip.dev/bithab/pkg/session"
)

// What selects the entity being removed.
type What string

const (
	Activity What = "activity"
	Sub      What = "sub"
	Goal     What = "goal"
)

type Remove struct {
	What What

	// Parent names the owning activity for sub-activity removals.
	Parent string
	Name   string

	// Yes skips the confirmation prompt.
	Yes bool

	Session *session.Session
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not remove, no session")
	}

	intent, err := n.intent()
	if err != nil {
		return err
	}
	intent.Confirmed = n.Yes

	effect := n.Session.Apply(intent)
	if effect.NeedsConfirm {
		if !confirm(effect.Prompt) {
			fmt.Println("Cancelled.")
			return nil
		}
		intent.Confirmed = true
		effect = n.Session.Apply(intent)
	}
	if !effect.Changed {
		return fmt.Errorf("nothing removed for %q", n.Name)
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	switch n.What {
	case Goal:
		pp.Title("Goals")
		pp.Goals(n.Session.State.Goals)
	default:
		pp.Title("Activities")
		pp.Activities(viewmodel.ActivityRows(n.Session.State, n.Session.Cursor))
	}
	return nil
}

func (n *Remove) intent() (session.Intent, error) {
	switch n.What {
	case Activity:
		a, ok := n.Session.State.ActivityByName(n.Name)
		if !ok {
			return session.Intent{}, fmt.Errorf("no activity named %q", n.Name)
		}
		return session.Intent{Kind: session.KindRemoveActivity, ID: a.ID}, nil

	case Sub:
		a, ok := n.Session.State.ActivityByName(n.Parent)
		if !ok {
			return session.Intent{}, fmt.Errorf("no activity named %q", n.Parent)
		}
		for _, sub := range a.SubActivities {
			if strings.EqualFold(sub.Name, n.Name) {
				return session.Intent{Kind: session.KindRemoveSub, ActivityID: a.ID, ID: sub.ID}, nil
			}
		}
		return session.Intent{}, fmt.Errorf("activity %q has no sub-activity named %q", a.Name, n.Name)

	case Goal:
		g, ok := n.Session.State.GoalByName(n.Name)
		if !ok {
			return session.Intent{}, fmt.Errorf("no goal named %q", n.Name)
		}
		return session.Intent{Kind: session.KindRemoveGoal, ID: g.ID}, nil
	}
	return session.Intent{}, fmt.Errorf("do not know how to remove %q", n.What)
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
