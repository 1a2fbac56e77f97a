package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/bithab/pkg/habit"
	"tableflip.dev/bithab/pkg/habit/viewmodel"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Activities prints the sidebar projection: expansion arrows, selection
// marker, and sub-activities with their colors.
func (pp *PrettyPrint) Activities(rows []viewmodel.ActivityRow) {
	if len(rows) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print("Add a main activity to begin.\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "

	faint := color.New(color.Faint)
	selected := color.New(color.Bold)
	for _, row := range rows {
		arrow := "►"
		if row.Expanded {
			arrow = "▼"
		}
		name := row.Name
		if row.Selected {
			name = selected.Sprint(name)
		}
		id := ""
		if pp.ShowID {
			id = faint.Sprint(row.ID)
		}
		tbl.AddRow(arrow, name, id)

		if !row.Expanded {
			continue
		}
		for _, sub := range row.Subs {
			id = ""
			if pp.ShowID {
				id = faint.Sprint(sub.ID)
			}
			tbl.AddRow(" ", fmt.Sprintf("● %s %s", sub.Name, faint.Sprint(sub.Color)), id)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Goals prints the goal checklist.
func (pp *PrettyPrint) Goals(goals []habit.Goal) {
	if len(goals) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print("Add a goal to get started.\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "

	done := color.New(color.Faint, color.CrossedOut)
	faint := color.New(color.Faint)
	for _, g := range goals {
		mark := "○"
		name := g.Name
		if g.Completed {
			mark = "✓"
			name = done.Sprint(name)
		}
		id := ""
		if pp.ShowID {
			id = faint.Sprint(g.ID)
		}
		tbl.AddRow(mark, name, id)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Pills prints the logging projection for a single day.
func (pp *PrettyPrint) Pills(title string, pills []viewmodel.Pill) {
	pp.Title(title)
	faint := color.New(color.Faint)
	selected := color.New(color.Bold, color.FgHiGreen)
	for _, p := range pills {
		mark := "○"
		printer := faint
		if p.Selected {
			mark = "●"
			printer = selected
		}
		if p.Color != "" {
			_, _ = printer.Printf("%s %s %s\n", mark, p.Name, faint.Sprint(p.Color))
		} else {
			_, _ = printer.Printf("%s %s\n", mark, p.Name)
		}
	}
	fmt.Println("")
}
