package options

import (
	"github.com/spf13/cobra"
)

// ActivityOptions
type ActivityOptions struct {
	Activity string
}

func AddActivityArgs(cmd *cobra.Command, o *ActivityOptions) {
	cmd.Flags().StringVarP(&o.Activity, "activity", "a", "",
		"Specify the owning activity by name.")
}
