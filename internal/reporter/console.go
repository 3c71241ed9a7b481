package reporter

import (
	"fmt"
	"io"

	"utest/internal/devops"
	"utest/pkg/utest/core"
)

// Console prints outcomes as they arrive and a summary at the end. Its
// Observe method is meant to be used as a core.Observer.
type Console struct {
	out         io.Writer
	program     string
	width       int
	azureDevops bool
	showLogs    bool
	summary     TestSummary
	failures    []core.Outcome
}

type ConsoleOption func(*Console)

// WithAzureDevops enables Azure DevOps logging commands for failures.
func WithAzureDevops(enabled bool) ConsoleOption {
	return func(c *Console) {
		c.azureDevops = enabled
	}
}

// WithLogs prints the captured logs of passing tests as well.
func WithLogs(enabled bool) ConsoleOption {
	return func(c *Console) {
		c.showLogs = enabled
	}
}

// WithWidth overrides the detected terminal width.
func WithWidth(width int) ConsoleOption {
	return func(c *Console) {
		c.width = width
	}
}

// NewConsole creates a console reporter. program is the command used in the
// re-run hint printed for failed tests.
func NewConsole(out io.Writer, program string, opts ...ConsoleOption) *Console {
	c := &Console{
		out:     out,
		program: program,
		width:   termWidth(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Console) Observe(out core.Outcome) {
	c.summary.add(out)

	fmt.Fprintf(c.out, "%s %s (%s)\n", out.Name(), out.Status.ColorString(), out.Duration)

	if out.Status.Passed() {
		if c.showLogs && len(out.Logs) > 0 {
			c.printLogs(out)
		}
		return
	}

	c.failures = append(c.failures, out)

	if c.azureDevops {
		devops.LogErrorAt(c.out, out.ErrFile, out.ErrLine, "%s: %s", out.Name(), out.ErrMessage)
	}

	printSeparatorWithTitle(c.out, c.width, fmt.Sprintf("%s: %s", out.Status.String(), out.Name()))
	if location := out.Location(); location != "" {
		fmt.Fprintf(c.out, "    at %s\n", location)
	}
	for _, line := range wrapMessage(out.ErrMessage, c.width-4) {
		fmt.Fprintf(c.out, "    %s\n", line)
	}

	if len(out.Logs) > 0 {
		c.printLogs(out)
	}
}

func (c *Console) printLogs(out core.Outcome) {
	if c.azureDevops {
		group := devops.OpenGroup(c.out, fmt.Sprintf("Logs of %s", out.Name()))
		defer group.Close()
	}

	fmt.Fprintf(c.out, "  collected logs:\n")
	for _, line := range out.Logs {
		fmt.Fprintln(c.out, "    ", line)
	}
}

// PrintReport prints the summary of all outcomes observed so far.
func (c *Console) PrintReport() {
	printSeparator(c.out, c.width)
	status := c.summary.Status()
	fmt.Fprintf(c.out, "TEST RESULT: %s. %s (%s)\n", status.StringColor(), c.summary.Summary(), c.summary.duration)

	if len(c.failures) > 0 {
		fmt.Fprintln(c.out, "Failed tests:")
		for _, out := range c.failures {
			fmt.Fprintf(c.out, "    %s\n", out.Name())
		}
		fmt.Fprintf(c.out, "To run the failed tests again:\n    %s\n", RerunCommand(c.program, c.failures))
	}
}

func (c *Console) Summary() TestSummary {
	return c.summary
}

// Failures returns the outcomes of all failed tests, in execution order.
func (c *Console) Failures() []core.Outcome {
	return c.failures
}
