package cli

import "github.com/spf13/cobra"

var version = "dev"

func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "montagrade",
	Short: "Build conflict-free class schedules from a course catalog",
	Long: `montagrade reads a semester catalog dump and computes every mutually
conflict-free combination of one section per chosen course, ranked by
schedule quality (fewer days on campus, fewer gaps, earlier classes).`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(searchCmd)
}
