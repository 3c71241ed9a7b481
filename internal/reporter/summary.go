package reporter

import (
	"fmt"
	"strings"
	"time"

	"utest/pkg/utest/core"
)

type TestSummary struct {
	total    int
	passed   int
	failed   int
	notRun   int
	duration time.Duration
}

func (s *TestSummary) add(out core.Outcome) {
	s.total++
	s.duration += out.Duration
	switch out.Status {
	case core.StatusPass:
		s.passed++
	case core.StatusFail:
		s.failed++
	case core.StatusNotRun:
		s.notRun++
	default:
		panic("Invalid test status")
	}
}

func (s TestSummary) Total() int {
	return s.total
}

func (s TestSummary) Passed() int {
	return s.passed
}

func (s TestSummary) Failed() int {
	return s.failed
}

func (s TestSummary) Status() TestSummaryStatus {
	if s.failed > 0 || s.notRun > 0 {
		return TestStatusFailed
	}
	return TestStatusOk
}

func (s TestSummary) Summary() string {
	var out []string

	out = append(out, fmt.Sprintf("%d total", s.total))
	out = append(out, fmt.Sprintf("%d failed", s.failed))
	if s.notRun > 0 {
		out = append(out, fmt.Sprintf("%d not run", s.notRun))
	}
	out = append(out, fmt.Sprintf("%d passed", s.passed))

	return strings.Join(out, "; ")
}
