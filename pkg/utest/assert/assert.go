// Package assert provides the assertions used inside test bodies.
//
// Failing assertions report a message and their own call site to a
// FailHandler. The package level functions use a shared default Asserter
// whose handler panics with a *core.Failure; New builds an Asserter with a
// different handler.
package assert

import (
	"fmt"
	"reflect"
	"runtime"
)

type Asserter struct {
	handler FailHandler
}

func New(handler FailHandler) *Asserter {
	if handler == nil {
		handler = PanicHandler
	}
	return &Asserter{handler: handler}
}

var defaultAsserter = New(PanicHandler)

// SetFailHandler replaces the handler of the package level assertions and
// returns the previous one. It must not be called while tests are running.
func SetFailHandler(handler FailHandler) FailHandler {
	previous := defaultAsserter.handler
	if handler == nil {
		handler = PanicHandler
	}
	defaultAsserter.handler = handler
	return previous
}

// Default returns the Asserter behind the package level functions.
func Default() *Asserter {
	return defaultAsserter
}

// Eq fails unless expected and actual are equal.
func (a *Asserter) Eq(expected, actual any) {
	if equal(expected, actual) {
		return
	}
	a.fail(1, mismatch("Expected [%v] saw [%v]", expected, actual))
}

// Neq fails when notExpected and actual are equal.
func (a *Asserter) Neq(notExpected, actual any) {
	if !equal(notExpected, actual) {
		return
	}
	a.fail(1, fmt.Sprintf("Expected not [%v] saw [%v]", notExpected, actual))
}

func (a *Asserter) Expr(ok bool) {
	if ok {
		return
	}
	a.fail(1, "Assert expression failed")
}

func (a *Asserter) True(condition bool) {
	if condition {
		return
	}
	a.fail(1, "Expected [true] saw [false]")
}

func (a *Asserter) False(condition bool) {
	if !condition {
		return
	}
	a.fail(1, "Expected [false] saw [true]")
}

// Nil fails unless v is nil or a nil pointer, map, slice, channel or func.
func (a *Asserter) Nil(v any) {
	if isNil(v) {
		return
	}
	a.fail(1, "Expected [nil]")
}

func (a *Asserter) NotNil(v any) {
	if !isNil(v) {
		return
	}
	a.fail(1, "Expected not [nil]")
}

// Fail fails unconditionally.
func (a *Asserter) Fail(message string) {
	a.fail(1, message)
}

// Errorf fails unconditionally with a formatted message.
func (a *Asserter) Errorf(format string, args ...any) {
	a.fail(1, fmt.Sprintf(format, args...))
}

// NoError fails when err is not nil.
func (a *Asserter) NoError(err error) {
	if err == nil {
		return
	}
	a.fail(1, fmt.Sprintf("Expected no error saw [%v]", err))
}

// skip is the number of frames between the caller of the assertion and
// fail, not counting fail itself.
func (a *Asserter) fail(skip int, message string) {
	file, line := callSite(skip + 2)
	a.handler(message, file, line)
}

func callSite(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "", 0
	}
	return file, line
}

// Package level shortcuts. Each is a separate function rather than a
// method value so that the reported call site stays the caller's.

func Eq(expected, actual any) {
	if equal(expected, actual) {
		return
	}
	defaultAsserter.fail(1, mismatch("Expected [%v] saw [%v]", expected, actual))
}

func Neq(notExpected, actual any) {
	if !equal(notExpected, actual) {
		return
	}
	defaultAsserter.fail(1, fmt.Sprintf("Expected not [%v] saw [%v]", notExpected, actual))
}

func Expr(ok bool) {
	if ok {
		return
	}
	defaultAsserter.fail(1, "Assert expression failed")
}

func True(condition bool) {
	if condition {
		return
	}
	defaultAsserter.fail(1, "Expected [true] saw [false]")
}

func False(condition bool) {
	if !condition {
		return
	}
	defaultAsserter.fail(1, "Expected [false] saw [true]")
}

func Nil(v any) {
	if isNil(v) {
		return
	}
	defaultAsserter.fail(1, "Expected [nil]")
}

func NotNil(v any) {
	if !isNil(v) {
		return
	}
	defaultAsserter.fail(1, "Expected not [nil]")
}

func Fail(message string) {
	defaultAsserter.fail(1, message)
}

func Errorf(format string, args ...any) {
	defaultAsserter.fail(1, fmt.Sprintf(format, args...))
}

func NoError(err error) {
	if err == nil {
		return
	}
	defaultAsserter.fail(1, fmt.Sprintf("Expected no error saw [%v]", err))
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
