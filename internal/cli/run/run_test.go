package run

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"utest/pkg/utest/assert"
	"utest/pkg/utest/core"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	testify "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func init() {
	color.NoColor = true
}

type fakeSuite struct {
	tests []*core.Descriptor
	log   *logrus.Logger
}

func (s *fakeSuite) Name() string              { return "fake" }
func (s *fakeSuite) Logger() *logrus.Logger    { return s.log }
func (s *fakeSuite) Tests() []*core.Descriptor { return s.tests }
func (s *fakeSuite) AzureDevops() bool         { return false }

func testFunc(body func() error) core.Factory {
	return func() core.Test {
		return core.TestFunc(body)
	}
}

func newFakeSuite() *fakeSuite {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return &fakeSuite{
		log: log,
		tests: []*core.Descriptor{
			core.NewDescriptor(testFunc(func() error { return nil }), "A", "demo", "demo_test.go", 10),
			core.NewDescriptor(testFunc(func() error {
				assert.Eq(1, 2)
				return nil
			}), "B", "demo", "demo_test.go", 20),
			core.NewDescriptor(testFunc(func() error { return errors.New("boom") }), "C", "other", "other_test.go", 30),
		},
	}
}

func TestRunFailing(t *testing.T) {
	var out bytes.Buffer
	cmd := RunCmd{}
	err := cmd.run(newFakeSuite(), &out, "prog")
	require.ErrorIs(t, err, errTestsFailed)

	text := out.String()
	testify.Contains(t, text, "demo/A PASS")
	testify.Contains(t, text, "demo/B FAIL")
	testify.Contains(t, text, "Expected [1] saw [2]")
	testify.Contains(t, text, "unhandled exception: boom")
	testify.Contains(t, text, "TEST RESULT: failed. 3 total; 2 failed; 1 passed")
	testify.Contains(t, text, "prog run --run '^(demo/B|other/C)$'")
}

func TestRunSelected(t *testing.T) {
	var out bytes.Buffer
	cmd := RunCmd{}
	cmd.Categories = []string{"demo"}
	cmd.Skip = []string{"B$"}
	require.NoError(t, cmd.run(newFakeSuite(), &out, "prog"))

	testify.Contains(t, out.String(), "TEST RESULT: ok. 1 total; 0 failed; 1 passed")
	testify.NotContains(t, out.String(), "other/C")
}

func TestRunReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "run.yaml")
	cmd := RunCmd{Report: path}
	require.Error(t, cmd.run(newFakeSuite(), io.Discard, "prog"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var report struct {
		Suite  string `yaml:"suite"`
		Result string `yaml:"result"`
		Tests  []struct {
			Name   string `yaml:"name"`
			Status string `yaml:"status"`
		} `yaml:"tests"`
	}
	require.NoError(t, yaml.Unmarshal(data, &report))
	testify.Equal(t, "fake", report.Suite)
	testify.Equal(t, "failed", report.Result)
	require.Len(t, report.Tests, 3)
	testify.Equal(t, "A", report.Tests[0].Name)
	testify.Equal(t, "FAIL", report.Tests[2].Status)
}

func TestRunPublishRequiresReport(t *testing.T) {
	cmd := RunCmd{}
	cmd.Publish.Host = "reports.example.com"
	cmd.Publish.User = "ci"
	cmd.Publish.PrivateKeyPath = "/keys/id"
	testify.ErrorContains(t, cmd.run(newFakeSuite(), io.Discard, "prog"), "requires --report")
}

func TestRunBadPattern(t *testing.T) {
	cmd := RunCmd{}
	cmd.Match = []string{"("}
	testify.ErrorContains(t, cmd.run(newFakeSuite(), io.Discard, "prog"), "bad --run pattern")
}
