// Package testmgr executes single test instances: setup, body and cleanup,
// turning every way a test can fail into a closed outcome.
package testmgr

import (
	"errors"
	"io"
	"runtime/debug"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"utest/internal/utesterror"
	"utest/pkg/utest/core"
)

var (
	errNoFactory = errors.New("test has no factory")
	errNilTest   = errors.New("factory returned no test")
	errGoexit    = errors.New("test execution stopped by runtime.Goexit")
)

// Instantiate creates a new instance of the described test. A missing
// factory, a panicking factory or a factory returning nil is reported as
// an error.
func Instantiate(d *core.Descriptor) (core.Test, error) {
	factory := d.Factory()
	if factory == nil {
		return nil, errNoFactory
	}

	var test core.Test
	err := runCatchPanic(func() error {
		test = factory()
		return nil
	})
	if err != nil {
		return nil, err
	}

	if test == nil {
		return nil, errNilTest
	}

	return test, nil
}

// Execute runs the test and closes the outcome. Setup runs first when the
// test is a core.Fixture, then the body unless setup failed, then Cleanup
// regardless of what happened before. The first failure determines the
// result. Execute never panics. A nil suiteLog discards the forwarded log
// entries.
func Execute(test core.Test, out *core.Outcome, suiteLog *logrus.Logger) core.Status {
	startTime := time.Now()

	if suiteLog == nil {
		suiteLog = logrus.New()
		suiteLog.SetOutput(io.Discard)
	}

	capture := newCapturingLogger(out.Name(), suiteLog)
	if attacher, ok := test.(core.LoggerAttacher); ok {
		attacher.AttachLogger(capture.log)
	}

	fixture, hasFixture := test.(core.Fixture)

	var err error
	if hasFixture {
		err = runCatchPanic(fixture.Setup)
	}

	if err == nil {
		err = runCatchPanic(test.Run)
	}

	if hasFixture {
		cleanupErr := runCatchPanic(fixture.Cleanup)
		if cleanupErr != nil {
			if err == nil {
				err = cleanupErr
			} else {
				suiteLog.WithError(cleanupErr).Warnf("[%s] cleanup failed after an earlier failure", out.Name())
			}
		}
	}

	if err != nil {
		recordFailure(out, err, suiteLog)
	} else {
		out.Pass()
	}

	out.Duration = time.Since(startTime).Truncate(time.Millisecond)
	out.Logs = capture.close(out)

	return out.Status
}

func recordFailure(out *core.Outcome, err error, suiteLog *logrus.Logger) {
	var failure *core.Failure
	if errors.As(err, &failure) && failure.IsAssertion() {
		out.Fail(failure.Message, failure.File, failure.Line)
		return
	}

	var pe utesterror.PanicError
	if errors.As(err, &pe) {
		suiteLog.Debugf("[%s] panic stack:\n%s", out.Name(), string(pe.Stack))
	}

	out.Exception(err)
}

// Runs f in a separate goroutine and waits for it, so that neither a panic
// nor runtime.Goexit() inside f can escape.
func runCatchPanic(f func() error) error {
	var err error
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()

		finished := false
		defer func() {
			if r := recover(); r != nil {
				err = panicToError(r)
			} else if !finished {
				err = errGoexit
			}
		}()

		err = f()
		finished = true
	}()

	wg.Wait()

	return err
}

func panicToError(r any) error {
	if failure, ok := r.(*core.Failure); ok {
		return failure
	}

	return utesterror.NewPanicError(r, debug.Stack())
}
