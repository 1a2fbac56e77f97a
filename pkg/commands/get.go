package commands

import (
	"context"
	"fmt"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/bithab/pkg/commands/options"
	"tableflip.dev/bithab/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	ao := &options.ActivityOptions{}
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:       "get [activities|goals|calendar]",
		Short:     "Get activities, goals, or a month calendar",
		ValidArgs: []string{"activities", "goals", "calendar"},
		Example: `
bithab get activities
bithab get goals
bithab get calendar --activity Learning --month 2025-06
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			what := get.Activities
			if len(args) > 0 {
				switch args[0] {
				case "activities":
					what = get.Activities
				case "goals":
					what = get.Goals
				case "calendar", "cal":
					what = get.Calendar
				default:
					return fmt.Errorf("do not know how to get %q", args[0])
				}
			}

			month, err := mo.GetMonth()
			if err != nil {
				return err
			}

			s, err := newSession(context.Background())
			if err != nil {
				return err
			}
			defer s.Close()

			n := get.Get{
				What:     what,
				ShowID:   io.ShowID,
				Activity: ao.Activity,
				Month:    month,
				Session:  s,
			}
			err = n.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddActivityArgs(cmd, ao)
	options.AddMonthArgs(cmd, mo)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
