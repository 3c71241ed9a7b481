package run

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"utest/internal/cli/selection"
	"utest/internal/publish"
	"utest/internal/reporter"
	"utest/internal/runner"
	"utest/pkg/utest/core"
)

var errTestsFailed = errors.New("some tests failed")

type RunCmd struct {
	selection.Flags `embed:""`
	Report          string           `help:"Write a YAML report of the run to this file" type:"path" env:"UTEST_REPORT"`
	Logs            bool             `short:"l" help:"Also print the captured logs of passing tests"`
	Publish         publish.Settings `embed:""`
}

func (cmd *RunCmd) Run(suite core.SuiteContext) error {
	return cmd.run(suite, os.Stdout, os.Args[0])
}

// run executes the selected tests. program is the command suggested to re-run
// the failed ones.
func (cmd *RunCmd) run(suite core.SuiteContext, out io.Writer, program string) error {
	log := suite.Logger()

	filter, err := cmd.Filter()
	if err != nil {
		return err
	}

	if err := cmd.Publish.Check(); err != nil {
		return err
	}

	if cmd.Publish.Enabled() && cmd.Report == "" {
		return fmt.Errorf("publishing to '%s' requires --report", cmd.Publish.Host)
	}

	if description := cmd.Describe(); description != "" {
		log.Infof("Selecting tests %s", description)
	}

	console := reporter.NewConsole(out, program,
		reporter.WithAzureDevops(suite.AzureDevops()),
		reporter.WithLogs(cmd.Logs),
	)
	observers := []core.Observer{console.Observe}

	var report *reporter.YAMLReport
	if cmd.Report != "" {
		report = reporter.NewYAMLReport(suite.Name())
		observers = append(observers, report.Observe)
	}

	status := runner.New(log).RunAll(slices.Values(suite.Tests()), filter, fanOut(observers...))

	if report != nil {
		if err := report.WriteFile(cmd.Report); err != nil {
			return err
		}
		log.Infof("Wrote report to %s", cmd.Report)

		if cmd.Publish.Enabled() {
			if _, err := publish.Upload(cmd.Publish, cmd.Report, log); err != nil {
				return fmt.Errorf("failed to publish report: %w", err)
			}
		}
	}

	console.PrintReport()

	if status.Failed() {
		return errTestsFailed
	}

	return nil
}

func fanOut(observers ...core.Observer) core.Observer {
	return func(out core.Outcome) {
		for _, observer := range observers {
			observer(out)
		}
	}
}
