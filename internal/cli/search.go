package cli

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"montagrade/internal/model"
)

var searchCmd = &cobra.Command{
	Use:   "search TERM",
	Short: "List catalog courses matching a code or name fragment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogPath, _ := cmd.Flags().GetString("catalog")
		term := strings.ToLower(args[0])

		catalog, err := model.CatalogFromJson(catalogPath)
		if err != nil {
			return fmt.Errorf("cannot load catalog: %w", err)
		}

		matches := lo.Filter(catalog.Courses, func(course model.Course, _ int) bool {
			haystack := strings.ToLower(course.Id + " " + course.Name + " " + course.FullName)
			return strings.Contains(haystack, term)
		})
		if len(matches) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No course matches %q.\n", args[0])
			return nil
		}

		out := cmd.OutOrStdout()
		for _, course := range matches {
			fmt.Fprintf(out, "%v  %v\n", course.Id, course.Name)
			for _, section := range course.Sections {
				fmt.Fprintf(out, "    %v  %v\n", section.Id, describeSection(section))
			}
		}

		return nil
	},
}

func describeSection(section model.Section) string {
	if len(section.Blocks) == 0 {
		return "no scheduled meetings"
	}

	meetings := lo.Map(section.Blocks, func(block model.ClassBlock, _ int) string {
		day := "?"
		if block.Weekday >= 1 && block.Weekday <= model.NumWeekdays {
			day = weekdayNames[block.Weekday-1]
		}
		if len(block.Slots) == 0 {
			return day
		}
		first := model.SlotLabels[block.Slots[0]]
		last := model.SlotLabels[block.Slots[len(block.Slots)-1]]
		if block.Room == "" {
			return fmt.Sprintf("%v %v-%v", day, first, last)
		}
		return fmt.Sprintf("%v %v-%v (%v)", day, first, last, block.Room)
	})

	return strings.Join(meetings, ", ")
}

func init() {
	searchCmd.Flags().StringP("catalog", "f", "", "Path to the semester catalog JSON file")
	searchCmd.MarkFlagRequired("catalog")
}
