package helloworld

import (
	"fmt"
	"os"
	"path/filepath"

	"utest/pkg/utest"
	"utest/pkg/utest/assert"
)

// GreetingFileTest writes a greeting into a scratch directory. Every run gets
// a fresh instance, so fields never leak between runs.
type GreetingFileTest struct {
	utest.BaseFixture
	dir string
}

var _ = utest.RegisterFixture[GreetingFileTest]("GreetingFile", "helloworld/fixture")

func (t *GreetingFileTest) Setup() error {
	dir, err := os.MkdirTemp("", "utest-helloworld-")
	if err != nil {
		return fmt.Errorf("failed to create scratch directory: %w", err)
	}

	t.dir = dir

	// The logger is captured and stored with the outcome of the test.
	t.Logger().Infof("Created scratch directory '%s'", dir)
	return nil
}

func (t *GreetingFileTest) Run() error {
	path := filepath.Join(t.dir, "greeting.txt")
	if err := os.WriteFile(path, []byte("Hello, world!\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write greeting: %w", err)
	}

	data, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Eq("Hello, world!\n", string(data))
	return nil
}

// Cleanup runs even when Setup or Run failed.
func (t *GreetingFileTest) Cleanup() error {
	if t.dir == "" {
		return nil
	}

	t.Logger().Debugf("Removing scratch directory '%s'", t.dir)
	return os.RemoveAll(t.dir)
}
