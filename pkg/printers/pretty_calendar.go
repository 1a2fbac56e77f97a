package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/bithab/pkg/habit/viewmodel"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints the projected month grid: days with completion dots render
// bold, padding days from neighboring months render faint, today is
// underlined. Dot colors are listed under the grid since the basic terminal
// palette cannot reproduce arbitrary hex colors.
func (pp *PrettyPrint) Month(view viewmodel.MonthView) {
	if view.NoSelection {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print("Select an activity to see its calendar.\n\n")
		return
	}

	tf := color.New(color.FgWhite, color.Italic)
	title := view.Title
	mid := (width - len(title)) / 2
	if mid < 0 {
		mid = 0
	}
	pad := width - mid - len(title)
	if pad < 0 {
		pad = 0
	}
	tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), title, strings.Repeat(" ", pad))

	h := color.New(color.Faint)
	_, _ = h.Println("Su Mo Tu We Th Fr Sa")

	outside := color.New(color.Faint)
	plain := color.New(color.FgWhite)
	logged := color.New(color.Bold, color.FgHiWhite)

	for i, day := range view.Days {
		printer := plain
		if !day.InMonth {
			printer = outside
		}
		if len(day.Dots) > 0 {
			printer = logged
		}
		if day.Today {
			printer = color.New(printerAttrs(day)...)
		}
		_, _ = printer.Printf("%2d ", day.Day)
		if (i+1)%7 == 0 {
			fmt.Print("\n")
		}
	}
	fmt.Print("\n")
}

func printerAttrs(day viewmodel.DayView) []color.Attribute {
	attrs := []color.Attribute{color.Underline}
	if len(day.Dots) > 0 {
		attrs = append(attrs, color.Bold, color.FgHiWhite)
	}
	return attrs
}
