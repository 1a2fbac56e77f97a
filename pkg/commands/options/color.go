package options

import (
	"github.com/spf13/cobra"
)

// ColorOptions
type ColorOptions struct {
	Color string
}

func AddColorArgs(cmd *cobra.Command, o *ColorOptions) {
	cmd.Flags().StringVar(&o.Color, "color", "",
		`Hex color for the sub-activity, example: --color="#F59E0B".`)
}
