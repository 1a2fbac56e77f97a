package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/bithab/pkg/commands/options"
	"tableflip.dev/bithab/pkg/runner/add"
)

func addSub(topLevel *cobra.Command) {
	ao := &options.ActivityOptions{}
	co := &options.ColorOptions{}
	name := ""

	cmd := &cobra.Command{
		Use:   "sub",
		Short: "Add a sub-activity to an activity",
		Example: `
bithab add sub Reading --activity Learning --color "#3B82F6"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a name")
			}
			name = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if ao.Activity == "" {
				return errors.New("requires --activity")
			}
			s, err := newSession(context.Background())
			if err != nil {
				return err
			}
			defer s.Close()

			n := add.Add{
				What:    add.Sub,
				Parent:  ao.Activity,
				Name:    name,
				Color:   co.Color,
				Session: s,
			}
			err = n.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddActivityArgs(cmd, ao)
	options.AddColorArgs(cmd, co)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
