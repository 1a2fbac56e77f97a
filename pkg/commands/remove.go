package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/bithab/pkg/commands/options"
	"tableflip.dev/bithab/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	ao := &options.ActivityOptions{}
	yo := &options.ConfirmOptions{}
	what := remove.Activity
	name := ""

	cmd := &cobra.Command{
		Use:     "remove [activity|sub|goal] <name>",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove an activity, sub-activity, or goal",
		Example: `
bithab remove activity Health
bithab remove sub Reading --activity Learning
bithab remove goal Read 12 books this year --yes
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 2 {
				return errors.New("requires a kind and a name")
			}
			switch args[0] {
			case "activity":
				what = remove.Activity
			case "sub":
				what = remove.Sub
			case "goal":
				what = remove.Goal
			default:
				return fmt.Errorf("do not know how to remove %q", args[0])
			}
			name = strings.Join(args[1:], " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := newSession(context.Background())
			if err != nil {
				return err
			}
			defer s.Close()

			n := remove.Remove{
				What:    what,
				Parent:  ao.Activity,
				Name:    name,
				Yes:     yo.Yes,
				Session: s,
			}
			err = n.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddActivityArgs(cmd, ao)
	options.AddYesArgs(cmd, yo)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
