package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cottand/wcka/closure"
	"github.com/cottand/wcka/internal/log"
	"github.com/cottand/wcka/parser"
)

var PreclosureCmd = &cobra.Command{
	Use:          "preclosure \"term\"",
	Short:        "Expand an iteration-free parallel composition into its interleavings",
	RunE:         runPreclosure,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

var preclosureLogLevel *int

func init() {
	preclosureLogLevel = PreclosureCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
}

func runPreclosure(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*preclosureLogLevel))

	for _, arg := range args {
		t, err := parser.Parse(arg)
		if err != nil {
			return fmt.Errorf("could not parse '%s': %s", arg, formatErr(err))
		}
		expanded, err := closure.Preclosure(t)
		if err != nil {
			return fmt.Errorf("could not expand '%s': %s", t, formatErr(err))
		}
		fmt.Println(expanded)
	}
	return nil
}
