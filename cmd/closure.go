package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cottand/wcka/ckaerr"
	"github.com/cottand/wcka/closure"
	"github.com/cottand/wcka/internal/log"
	"github.com/cottand/wcka/parser"
)

var ClosureCmd = &cobra.Command{
	Use:          "closure \"term\"",
	Short:        "Compute the closure of a term, eliminating parallel composition over iteration",
	RunE:         runClosure,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

var (
	closureLogLevel   *int
	closureMultiSteps *bool
)

func init() {
	closureLogLevel = ClosureCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
	closureMultiSteps = ClosureCmd.Flags().BoolP("multi-steps", "m", false, "treat parallel compositions of three or more primitives as atomic steps")
}

func runClosure(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*closureLogLevel))

	policy := closure.StepPrimitivePairs
	if *closureMultiSteps {
		policy = closure.StepMultiPrimitive
	}
	closer := closure.NewCloser(policy)
	for _, arg := range args {
		t, err := parser.Parse(arg)
		if err != nil {
			return fmt.Errorf("could not parse '%s': %s", arg, formatErr(err))
		}
		closed, err := closer.Closure(t)
		if err != nil {
			return fmt.Errorf("could not close '%s': %s", t, formatErr(err))
		}
		fmt.Println(closed)
	}
	return nil
}

func formatErr(err error) string {
	if coded, ok := err.(ckaerr.CKAError); ok {
		return ckaerr.FormatWithCode(coded)
	}
	return err.Error()
}
