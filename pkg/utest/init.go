// Package utest declares and runs unit tests.
//
// Tests are declared at package scope so that they are registered while the
// program initializes:
//
//	var _ = utest.RegisterFunc("Addition", "math", func() error {
//		assert.Eq(4, 2+2)
//		return nil
//	})
//
// A package declaring tests only registers them when it is linked into the
// binary. Test binaries therefore import such packages for their side
// effects, eg. `import _ "example.com/project/tests"`, and call Main.
package utest

import (
	"iter"
	"runtime"

	"utest/internal/registry"
	"utest/internal/runner"
	"utest/pkg/utest/core"
	"utest/pkg/utest/suite"

	"github.com/sirupsen/logrus"
)

type Test = core.Test
type TestFunc = core.TestFunc
type Fixture = core.Fixture
type BaseFixture = core.BaseFixture

type Factory = core.Factory
type Descriptor = core.Descriptor
type AutoRegistered = registry.AutoRegistered

type Status = core.Status
type Outcome = core.Outcome
type Filter = core.Filter
type Observer = core.Observer

const (
	StatusNotRun = core.StatusNotRun
	StatusPass   = core.StatusPass
	StatusFail   = core.StatusFail
)

// Register declares a test created by factory. The declaration site is the
// caller's source location.
func Register(name, category string, factory Factory) AutoRegistered {
	return declare(name, category, factory)
}

// RegisterFunc declares a test running body.
func RegisterFunc(name, category string, body func() error) AutoRegistered {
	return declare(name, category, func() Test {
		return TestFunc(body)
	})
}

// RegisterFixture declares a test whose instances are zero values of T,
// typically a struct embedding BaseFixture.
func RegisterFixture[T any, PT interface {
	*T
	Test
}](name, category string) AutoRegistered {
	return declare(name, category, func() Test {
		return PT(new(T))
	})
}

// declare must be called directly by the exported registration functions.
func declare(name, category string, factory Factory) AutoRegistered {
	_, file, line, _ := runtime.Caller(2)
	return registry.Register(core.NewDescriptor(factory, name, category, file, line))
}

// Registered returns every declared test, in declaration order.
func Registered() []*Descriptor {
	return registry.Get().Tests()
}

var defaultRunner = runner.New(logrus.StandardLogger())

// Run executes a single test.
func Run(d *Descriptor) (Status, Outcome) {
	return defaultRunner.Run(d)
}

func RunAll(tests iter.Seq[*Descriptor], filter Filter, observer Observer) Status {
	return defaultRunner.RunAll(tests, filter, observer)
}

func RunEach(tests iter.Seq[*Descriptor], observer Observer) Status {
	return defaultRunner.RunEach(tests, observer)
}

func RunRegistered(filter Filter, observer Observer) Status {
	return defaultRunner.RunRegistered(filter, observer)
}

func RunAllRegistered(observer Observer) Status {
	return defaultRunner.RunAllRegistered(observer)
}

// Main runs the command line of a test binary named name and exits.
func Main(name string) {
	s := suite.CreateSuite(name)
	s.Run()
}
