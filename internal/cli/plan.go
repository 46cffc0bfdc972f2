package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"montagrade/internal/model"
	"montagrade/internal/planner"
)

var planCmd = &cobra.Command{
	Use:   "plan CODE...",
	Short: "Compute conflict-free schedule combinations for the given courses",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogPath, _ := cmd.Flags().GetString("catalog")
		top, _ := cmd.Flags().GetInt("top")

		catalog, err := model.CatalogFromJson(catalogPath)
		if err != nil {
			return fmt.Errorf("cannot load catalog: %w", err)
		}

		plan := planner.New()
		for _, code := range args {
			course, found := lo.Find(catalog.Courses, func(course model.Course) bool {
				return course.Id == code
			})
			if !found {
				return fmt.Errorf("%v is not in the catalog", code)
			}
			if err := plan.AddCourse(course); err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()

		blocked := lo.Filter(plan.Courses(), func(course model.Course, _ int) bool {
			return course.Blocked
		})
		for _, course := range blocked {
			color.New(color.FgYellow).Fprintf(out, "warning: %v (%v) cannot be fit into any combination\n", course.Id, course.Name)
		}

		combinations := plan.Combinations()
		if len(combinations) == 0 {
			fmt.Fprintln(out, "No conflict-free combination exists for the chosen courses.")
			return nil
		}

		fmt.Fprintf(out, "%v combination(s) found\n", len(combinations))
		limit := min(max(top, 0), len(combinations))
		for index, combination := range combinations[:limit] {
			fmt.Fprintf(out, "\n#%v\n", index+1)
			renderCombination(out, combination)
		}

		return nil
	},
}

func init() {
	planCmd.Flags().StringP("catalog", "f", "", "Path to the semester catalog JSON file")
	planCmd.MarkFlagRequired("catalog")
	planCmd.Flags().IntP("top", "n", 3, "Number of top-ranked combinations to render")
}
