package reporter

import (
	"github.com/fatih/color"
)

type TestSummaryStatus int

const (
	TestStatusOk TestSummaryStatus = iota
	TestStatusFailed
)

func (ts TestSummaryStatus) String() string {
	switch ts {
	case TestStatusOk:
		return "ok"
	case TestStatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

func (ts TestSummaryStatus) StringColor() string {
	switch ts {
	case TestStatusOk:
		return color.GreenString(ts.String())
	case TestStatusFailed:
		return color.New(color.FgRed, color.Bold).Sprint(ts.String())
	default:
		return ts.String()
	}
}

func (ts TestSummaryStatus) IsBad() bool {
	return ts == TestStatusFailed
}
