package core

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Test is a single test case. A fresh instance is created through the
// descriptor's factory for every execution.
type Test interface {
	// Run the body of the test. Returning an error, panicking or failing an
	// assertion fails the test.
	Run() error
}

// Fixture is implemented by tests that need to prepare and release
// resources. Cleanup is called even when Setup or the test body failed.
type Fixture interface {
	// Setup before running the test body
	Setup() error

	// Cleanup after running the test body
	Cleanup() error
}

// TestFunc adapts a plain function to the Test interface.
type TestFunc func() error

func (f TestFunc) Run() error {
	return f()
}

// BaseFixture is a partial implementation of the Fixture interface. It is
// meant to be embedded by tests that only override some of the hooks. It
// does NOT provide a default implementation for the Run() method.
type BaseFixture struct {
	log *logrus.Logger
}

func (f BaseFixture) Setup() error {
	return nil
}

func (f BaseFixture) Cleanup() error {
	return nil
}

func (f *BaseFixture) AttachLogger(log *logrus.Logger) {
	f.log = log
}

// Logger returns the logger attached for the current execution. Output
// written to it is captured in the outcome.
func (f *BaseFixture) Logger() *logrus.Logger {
	if f.log == nil {
		f.log = logrus.New()
		f.log.SetOutput(io.Discard)
	}

	return f.log
}
