package core

import (
	"fmt"
	"time"
)

const unhandledMessage = "unhandled exception"

// Outcome is the result of a single test execution. Observers receive it by
// value.
type Outcome struct {
	Descriptor *Descriptor
	Status     Status
	Duration   time.Duration
	ErrMessage string
	ErrFile    string
	ErrLine    int
	// Lines written to the test's logger during the execution.
	Logs []string
}

// Pass closes the outcome as passed. It has no effect once the outcome
// has a final status.
func (o *Outcome) Pass() {
	if o.Status.Done() {
		return
	}

	o.Status = StatusPass
}

// Fail closes the outcome as failed at the given location. It has no effect
// once the outcome has a final status.
func (o *Outcome) Fail(message, file string, line int) {
	if o.Status.Done() {
		return
	}

	o.Status = StatusFail
	o.ErrMessage = message
	o.ErrFile = file
	o.ErrLine = line
}

// Exception closes the outcome as failed by an error that is not an
// assertion failure. No location is recorded.
func (o *Outcome) Exception(err error) {
	message := unhandledMessage
	if err != nil && err.Error() != "" {
		message = fmt.Sprintf("%s: %s", unhandledMessage, err.Error())
	}

	o.Fail(message, "", 0)
}

// Location returns the failure site as file:line, or an empty string when
// none was recorded.
func (o Outcome) Location() string {
	if o.ErrFile == "" {
		return ""
	}

	return fmt.Sprintf("%s:%d", o.ErrFile, o.ErrLine)
}

// Name returns the name of the test the outcome belongs to.
func (o Outcome) Name() string {
	if o.Descriptor == nil {
		return ""
	}

	return o.Descriptor.ID()
}
