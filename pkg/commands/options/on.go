package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/bithab/pkg/datekey"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2025-06-15".`)
}

func (o *OnOptions) GetOn() (datekey.Key, error) {
	if o.OnString == "" {
		return "", nil
	}
	return datekey.Parse(o.OnString)
}
