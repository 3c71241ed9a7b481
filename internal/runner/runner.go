// Package runner drives test execution: it walks a collection of test
// descriptors, runs the ones selected by a filter and hands every outcome to
// an observer.
package runner

import (
	"io"
	"iter"

	"github.com/sirupsen/logrus"

	"utest/internal/registry"
	"utest/internal/testmgr"
	"utest/pkg/utest/core"
)

type Runner struct {
	log *logrus.Logger
}

// New creates a runner logging to log. A nil logger discards all output.
func New(log *logrus.Logger) *Runner {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	return &Runner{log: log}
}

// Run executes a single test on a fresh instance created by its factory.
func (r *Runner) Run(d *core.Descriptor) (core.Status, core.Outcome) {
	out := core.Outcome{Descriptor: d}

	r.log.Debugf("%s (started)", d.ID())

	test, err := testmgr.Instantiate(d)
	if err != nil {
		r.log.WithError(err).Errorf("Failed to create test '%s' declared at %s", d.ID(), d.Location())
		out.Exception(err)
	} else {
		testmgr.Execute(test, &out, r.log)
	}

	r.log.
		WithField("test", d.ID()).
		WithField("status", out.Status.String()).
		Logf(out.Status.LogLevel(), "%s %s (%s)", d.ID(), out.Status.ColorString(), out.Duration)

	return out.Status, out
}

// RunAll runs every test of the collection accepted by filter, in order, and
// passes each outcome to observer before moving on to the next test. The
// result is StatusPass when every selected test passed, including when no
// test was selected at all. A nil filter selects every test.
func (r *Runner) RunAll(tests iter.Seq[*core.Descriptor], filter core.Filter, observer core.Observer) core.Status {
	if filter == nil {
		filter = core.AcceptAll
	}

	var total, passed int
	for d := range tests {
		if !filter(d) {
			r.log.Tracef("Skipping test '%s' excluded by filter", d.ID())
			continue
		}

		status, out := r.Run(d)
		if status == core.StatusPass {
			passed++
		}
		total++

		if observer != nil {
			observer(out)
		}
	}

	r.log.Debugf("Ran %d tests, %d passed", total, passed)

	if passed == total {
		return core.StatusPass
	}

	return core.StatusFail
}

// RunEach runs every test of the collection.
func (r *Runner) RunEach(tests iter.Seq[*core.Descriptor], observer core.Observer) core.Status {
	return r.RunAll(tests, core.AcceptAll, observer)
}

// RunRegistered runs the registered tests accepted by filter.
func (r *Runner) RunRegistered(filter core.Filter, observer core.Observer) core.Status {
	return r.RunAll(registry.Get().All(), filter, observer)
}

// RunAllRegistered runs every registered test.
func (r *Runner) RunAllRegistered(observer core.Observer) core.Status {
	return r.RunRegistered(core.AcceptAll, observer)
}
