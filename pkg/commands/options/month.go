package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/bithab/pkg/calendar"
)

const layoutMonth = "2006-01"

// MonthOptions
type MonthOptions struct {
	MonthString string
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVar(&o.MonthString, "month", "",
		`Specify a month, example: --month="2025-06".`)
}

func (o *MonthOptions) GetMonth() (*calendar.Month, error) {
	if o.MonthString == "" {
		return nil, nil
	}
	t, err := time.Parse(layoutMonth, o.MonthString)
	if err != nil {
		return nil, err
	}
	m := calendar.Of(t.Year(), int(t.Month()))
	return &m, nil
}
