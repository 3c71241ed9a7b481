package list

import (
	"fmt"
	"io"
	"os"

	"utest/internal/cli/selection"
	"utest/internal/collector"
	"utest/pkg/utest/core"
)

type ListTestsCmd struct {
	selection.Flags `embed:""`
}

func (cmd *ListTestsCmd) Run(suite core.SuiteContext) error {
	return cmd.list(suite, os.Stdout)
}

func (cmd *ListTestsCmd) list(suite core.SuiteContext, out io.Writer) error {
	log := suite.Logger()
	log.Info("Listing tests")

	filter, err := cmd.Filter()
	if err != nil {
		return err
	}

	inv := collector.Collect(suite.Tests())
	for _, warning := range inv.Warnings {
		log.Warn(warning)
	}

	collected := 0
	for _, test := range inv.Tests {
		if !filter(test) {
			log.Tracef("Skipping test '%s'", test.ID())
			continue
		}

		collected++
		fmt.Fprintf(out, "%s (%s)\n", test.ID(), test.Location())
	}

	log.Infof("Selected %d of %d tests", collected, len(inv.Tests))
	return nil
}
