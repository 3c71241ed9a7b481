package helloworld

import (
	"testing"

	"utest/pkg/utest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelloWorldOutcomes(t *testing.T) {
	statuses := make(map[string]utest.Status)
	status := utest.RunAllRegistered(func(out utest.Outcome) {
		statuses[out.Descriptor.ID()] = out.Status
	})

	assert.Equal(t, utest.StatusFail, status)
	require.Len(t, statuses, 5)
	assert.Equal(t, utest.StatusPass, statuses["helloworld/Greeting"])
	assert.Equal(t, utest.StatusPass, statuses["helloworld/Words"])
	assert.Equal(t, utest.StatusPass, statuses["helloworld/fixture/GreetingFile"])
	assert.Equal(t, utest.StatusFail, statuses["helloworld/failing/FailingAssertion"])
	assert.Equal(t, utest.StatusFail, statuses["helloworld/failing/ReturnedError"])
}
