package reporter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"utest/pkg/utest/core"
	"utest/pkg/utest/utils"
)

type Report struct {
	RunID     string        `yaml:"runId"`
	Suite     string        `yaml:"suite"`
	StartedAt time.Time     `yaml:"startedAt"`
	Result    string        `yaml:"result"`
	Total     int           `yaml:"total"`
	Passed    int           `yaml:"passed"`
	Failed    int           `yaml:"failed"`
	Tests     []ReportEntry `yaml:"tests"`
}

type ReportEntry struct {
	Name       string   `yaml:"name"`
	Category   string   `yaml:"category,omitempty"`
	Declared   string   `yaml:"declared"`
	Status     string   `yaml:"status"`
	DurationMs int64    `yaml:"durationMs"`
	Message    string   `yaml:"message,omitempty"`
	File       string   `yaml:"file,omitempty"`
	Line       int      `yaml:"line,omitempty"`
	Logs       []string `yaml:"logs,omitempty"`
}

// YAMLReport collects outcomes into a machine readable report. Its Observe
// method is meant to be used as a core.Observer.
type YAMLReport struct {
	report  Report
	summary TestSummary
}

func NewYAMLReport(suite string) *YAMLReport {
	return &YAMLReport{
		report: Report{
			RunID:     uuid.NewString(),
			Suite:     suite,
			StartedAt: time.Now().UTC(),
			Tests:     make([]ReportEntry, 0),
		},
	}
}

func (r *YAMLReport) Observe(out core.Outcome) {
	r.summary.add(out)

	entry := ReportEntry{
		Name:       out.Name(),
		Status:     out.Status.String(),
		DurationMs: out.Duration.Milliseconds(),
		Message:    out.ErrMessage,
		File:       out.ErrFile,
		Line:       out.ErrLine,
	}

	if out.Descriptor != nil {
		entry.Name = out.Descriptor.Name()
		entry.Category = out.Descriptor.Category()
		entry.Declared = out.Descriptor.Location()
	}

	for _, line := range out.Logs {
		entry.Logs = append(entry.Logs, utils.StripANSI(line))
	}

	r.report.Tests = append(r.report.Tests, entry)
}

// Report returns the report built from the outcomes observed so far.
func (r *YAMLReport) Report() Report {
	report := r.report
	report.Result = r.summary.Status().String()
	report.Total = r.summary.Total()
	report.Passed = r.summary.Passed()
	report.Failed = r.summary.Failed()
	return report
}

func (r *YAMLReport) Write(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(r.Report()); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	return encoder.Close()
}

// WriteFile writes the report to path, creating parent directories as
// needed.
func (r *YAMLReport) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file '%s': %w", path, err)
	}
	defer f.Close()

	if err := r.Write(f); err != nil {
		return err
	}

	return f.Close()
}
