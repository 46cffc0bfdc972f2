package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"montagrade/internal/model"
)

var weekdayNames = [model.NumWeekdays]string{
	"Sun",
	"Mon",
	"Tue",
	"Wed",
	"Thu",
	"Fri",
	"Sat",
}

var coursePrinters = []*color.Color{
	color.New(color.FgCyan),
	color.New(color.FgGreen),
	color.New(color.FgMagenta),
	color.New(color.FgYellow),
	color.New(color.FgBlue),
	color.New(color.FgRed),
	color.New(color.FgHiCyan),
	color.New(color.FgHiGreen),
	color.New(color.FgHiMagenta),
	color.New(color.FgHiYellow),
}

const cellWidth = 9

// renderCombination prints a weekly grid with one column per weekday and one
// row per slot, each cell holding the course id scheduled there.
func renderCombination(w io.Writer, combination model.Combination) {
	type cell struct {
		label   string
		printer *color.Color
	}

	var grid [model.NumWeekdays][model.NumSlots]*cell

	for index, entry := range combination {
		printer := coursePrinters[index%len(coursePrinters)]
		for _, block := range entry.Section.Blocks {
			day := block.Weekday - 1
			if day < 0 || day >= model.NumWeekdays {
				continue
			}
			for _, slot := range block.Slots {
				if slot < 0 || slot >= model.NumSlots {
					continue
				}
				grid[day][slot] = &cell{label: entry.Course.Id, printer: printer}
			}
		}
	}

	fmt.Fprintf(w, "%6v", "")
	for day := 0; day < model.NumWeekdays; day++ {
		fmt.Fprintf(w, " %-*v", cellWidth, weekdayNames[day])
	}
	fmt.Fprintln(w)

	for slot := 0; slot < model.NumSlots; slot++ {
		fmt.Fprintf(w, "%6v", model.SlotLabels[slot])
		for day := 0; day < model.NumWeekdays; day++ {
			entry := grid[day][slot]
			if entry == nil {
				fmt.Fprintf(w, " %-*v", cellWidth, ".")
				continue
			}
			fmt.Fprint(w, " ")
			entry.printer.Fprint(w, padded(entry.label))
		}
		fmt.Fprintln(w)
	}

	for index, entry := range combination {
		printer := coursePrinters[index%len(coursePrinters)]
		printer.Fprintf(w, "  %v", entry.Course.Id)
		fmt.Fprintf(w, " %v, section %v", entry.Course.Name, entry.Section.Id)
		if len(entry.Section.Instructors) > 0 {
			fmt.Fprintf(w, " (%v)", strings.Join(entry.Section.Instructors, ", "))
		}
		fmt.Fprintln(w)
	}
}

func padded(label string) string {
	if len(label) > cellWidth {
		return label[:cellWidth]
	}
	return label + strings.Repeat(" ", cellWidth-len(label))
}
