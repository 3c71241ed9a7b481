// Package helloworld declares a handful of example tests. It is meant to be
// used as an example of how to write tests for the utest framework, and is
// linked into the utest-helloworld binary.
package helloworld

import (
	"errors"
	"fmt"
	"strings"

	"utest/pkg/utest"
	"utest/pkg/utest/assert"
)

var _ = utest.RegisterFunc("Greeting", "helloworld", func() error {
	greeting := fmt.Sprintf("Hello, %s!", "world")

	assert.Eq("Hello, world!", greeting)
	assert.True(strings.HasPrefix(greeting, "Hello"))
	return nil
})

var _ = utest.RegisterFunc("Words", "helloworld", func() error {
	words := strings.Fields("hello brave new world")

	assert.Eq([]string{"hello", "brave", "new", "world"}, words)

	// Numbers of different types compare by value.
	assert.Eq(int64(4), len(words))
	return nil
})

// The tests below fail on purpose, to show how failures are reported.

var _ = utest.RegisterFunc("FailingAssertion", "helloworld/failing", func() error {
	// A failed assertion stops the test here and is reported with the
	// location of the assertion.
	assert.Eq("Hello, world!", "Goodbye, world!")

	fmt.Println("This message will never be printed!")
	return nil
})

var _ = utest.RegisterFunc("ReturnedError", "helloworld/failing", func() error {
	// Returning an error, or panicking, reports the test as failed with an
	// unhandled exception. Assertions are for the code under test, errors
	// are for problems in the test itself.
	return errors.New("this test will error")
})
