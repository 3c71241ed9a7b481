package suite

import (
	"utest/internal/cli"
	"utest/internal/registry"
	"utest/pkg/utest/core"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
)

// Suite binds the registered tests to the parsed command line of a test
// binary.
type Suite struct {
	name        string
	ctx         *kong.Context
	registry    *registry.Registry
	azureDevops bool
	Log         *logrus.Logger
}

func CreateSuite(name string) Suite {
	ctx, global := cli.ParseCommandLine(name)

	s := newSuite(name, registry.Get(), global.Verbosity, global.AzureDevops)
	s.ctx = ctx
	return s
}

func newSuite(name string, reg *registry.Registry, level logrus.Level, azureDevops bool) Suite {
	logger := logrus.New()
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors: true,
	})

	logger.Debugf("Creating suite '%s'", name)

	return Suite{
		name:        name,
		registry:    reg,
		azureDevops: azureDevops,
		Log:         logger,
	}
}

// Run the selected command and exit the process.
func (s *Suite) Run() {
	if s.ctx == nil {
		s.Log.Fatalf("Suite '%s' not initialized", s.name)
	}

	s.Log.Infof("Running suite '%s' - %d tests registered.", s.name, s.registry.Len())
	s.ctx.BindTo(s, (*core.SuiteContext)(nil))
	s.reportExitStatus(s.ctx.Run())
}

// Returns the name of the suite
func (s *Suite) Name() string {
	return s.name
}

// Returns all registered tests, in registration order.
func (s *Suite) Tests() []*core.Descriptor {
	return s.registry.Tests()
}

func (s *Suite) AzureDevops() bool {
	return s.azureDevops
}

func (s *Suite) Logger() *logrus.Logger {
	return s.Log
}
