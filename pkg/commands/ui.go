package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/bithab/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
bithab ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			i := ui.UI{}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
