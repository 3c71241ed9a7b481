package core

import (
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

type Status int

const (
	StatusNotRun Status = iota
	StatusPass
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusNotRun:
		return "NOT RUN"
	case StatusPass:
		return "PASS"
	case StatusFail:
		return "FAIL"
	default:
		return "UNKNOWN"
	}
}

func (s Status) ColorString() string {
	switch s {
	case StatusPass:
		return color.GreenString(s.String())
	case StatusFail:
		return color.RedString(s.String())
	case StatusNotRun:
		return color.YellowString(s.String())
	default:
		return s.String()
	}
}

// LogLevel returns the level a result with this status should be logged at.
func (s Status) LogLevel() logrus.Level {
	switch s {
	case StatusPass:
		return logrus.InfoLevel
	case StatusFail:
		return logrus.ErrorLevel
	case StatusNotRun:
		return logrus.WarnLevel
	default:
		return logrus.InfoLevel
	}
}

func (s Status) Passed() bool {
	return s == StatusPass
}

func (s Status) Failed() bool {
	return s == StatusFail
}

// Done returns true once the status left its initial NotRun state.
func (s Status) Done() bool {
	return s == StatusPass || s == StatusFail
}
