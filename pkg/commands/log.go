package commands

import (
	"context"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/bithab/pkg/commands/options"
	"tableflip.dev/bithab/pkg/runner/log"
)

func addLog(topLevel *cobra.Command) {
	ao := &options.ActivityOptions{}
	onOpt := &options.OnOptions{}
	name := ""

	cmd := &cobra.Command{
		Use:   "log [sub-activity]",
		Short: "Toggle a day's completion for a sub-activity",
		Example: `
bithab log Reading --activity Learning
bithab log Reading --activity Learning --on 2025-06-15
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			on, err := onOpt.GetOn()
			if err != nil {
				return err
			}

			s, err := newSession(context.Background())
			if err != nil {
				return err
			}
			defer s.Close()

			n := log.Log{
				Activity: ao.Activity,
				Name:     name,
				On:       on,
				Session:  s,
			}
			err = n.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddActivityArgs(cmd, ao)
	options.AddOnArgs(cmd, onOpt)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
