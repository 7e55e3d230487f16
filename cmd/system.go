package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cottand/wcka/closure"
	"github.com/cottand/wcka/internal/log"
	"github.com/cottand/wcka/parser"
)

var SystemCmd = &cobra.Command{
	Use:          "system \"term\"",
	Short:        "Print the linear system the closure of a term solves",
	RunE:         runSystem,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

var systemLogLevel *int

func init() {
	systemLogLevel = SystemCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
}

func runSystem(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*systemLogLevel))

	for _, arg := range args {
		t, err := parser.Parse(arg)
		if err != nil {
			return fmt.Errorf("could not parse '%s': %s", arg, formatErr(err))
		}
		system, err := closure.System(t)
		if err != nil {
			return fmt.Errorf("could not build a system for '%s': %s", t, formatErr(err))
		}
		for _, iq := range system {
			fmt.Println(iq)
		}
	}
	return nil
}
