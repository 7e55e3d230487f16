package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cottand/wcka/cmd"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "wcka [subcommand]",
	Short:        "wcka ⨀\n closure computation for weak concurrent Kleene algebra terms",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.ClosureCmd)
	rootCmd.AddCommand(cmd.PreclosureCmd)
	rootCmd.AddCommand(cmd.SystemCmd)
}
