package core

import "fmt"

// Failure is the error raised by a failing test. It comes in two variants:
//
//   - assertion failures carry a message and the location of the failing
//     assertion,
//   - unhandled failures wrap an arbitrary error (Cause() != nil) and carry
//     no location.
//
// The default assertion fail handler panics with a *Failure; test bodies may
// also return one.
type Failure struct {
	Message string
	File    string
	Line    int
	cause   error
}

// NewFailure creates an assertion failure raised at file:line.
func NewFailure(message, file string, line int) *Failure {
	return &Failure{
		Message: message,
		File:    file,
		Line:    line,
	}
}

// Unhandled wraps an error that is not an assertion failure.
func Unhandled(err error) *Failure {
	f := &Failure{cause: err}
	if err != nil {
		f.Message = err.Error()
	}
	return f
}

func (f *Failure) Error() string {
	if f.File == "" {
		return f.Message
	}

	return fmt.Sprintf("%s:%d: %s", f.File, f.Line, f.Message)
}

func (f *Failure) Unwrap() error {
	return f.cause
}

// Cause returns the wrapped error of an unhandled failure, nil for assertion
// failures.
func (f *Failure) Cause() error {
	return f.cause
}

// IsAssertion returns true for failures raised by assertions.
func (f *Failure) IsAssertion() bool {
	return f.cause == nil
}
