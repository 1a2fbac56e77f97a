package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/bithab/pkg/runner/add"
)

func addGoal(topLevel *cobra.Command) {
	name := ""

	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Add a goal",
		Example: `
bithab add goal Read 12 books this year
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
			s, err := newSession(context.Background())
			if err != nil {
				return err
			}
			defer s.Close()

			n := add.Add{
				What:    add.Goal,
				Name:    name,
				Session: s,
			}
			err = n.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
