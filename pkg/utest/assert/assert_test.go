package assert

import (
	"errors"
	"math"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	testify "github.com/stretchr/testify/assert"

	"utest/pkg/utest/core"
)

type point struct {
	x, y int
}

func TestMessages(t *testing.T) {
	var x *point
	cases := []struct {
		name    string
		check   func(a *Asserter)
		message string
	}{
		{"eq", func(a *Asserter) { a.Eq(1, 2) }, "Expected [1] saw [2]"},
		{"eq strings", func(a *Asserter) { a.Eq("a", "b") }, "Expected [a] saw [b]"},
		{"eq unsigned to negative", func(a *Asserter) { a.Eq(uint8(255), int8(-1)) }, "Expected [255] saw [-1]"},
		{"eq max unsigned to negative", func(a *Asserter) { a.Eq(uint64(math.MaxUint64), -1) }, "Expected [18446744073709551615] saw [-1]"},
		{"eq negative to unsigned", func(a *Asserter) { a.Eq(int32(-1), uint32(math.MaxUint32)) }, "Expected [-1] saw [4294967295]"},
		{"neq", func(a *Asserter) { a.Neq(3, 3) }, "Expected not [3] saw [3]"},
		{"expr", func(a *Asserter) { a.Expr(1 > 2) }, "Assert expression failed"},
		{"true", func(a *Asserter) { a.True(false) }, "Expected [true] saw [false]"},
		{"false", func(a *Asserter) { a.False(true) }, "Expected [false] saw [true]"},
		{"nil", func(a *Asserter) { a.Nil(&point{}) }, "Expected [nil]"},
		{"not nil", func(a *Asserter) { a.NotNil(x) }, "Expected not [nil]"},
		{"fail", func(a *Asserter) { a.Fail("custom") }, "custom"},
		{"errorf", func(a *Asserter) { a.Errorf("got %d items", 4) }, "got 4 items"},
		{"no error", func(a *Asserter) { a.NoError(errors.New("eof")) }, "Expected no error saw [eof]"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := &Recorder{}
			tc.check(New(rec.Handle))

			failures := rec.Failures()
			require.Len(t, failures, 1)
			testify.Equal(t, tc.message, failures[0].Message)
			testify.Equal(t, "assert_test.go", filepath.Base(failures[0].File))
		})
	}
}

func TestPassingAssertions(t *testing.T) {
	rec := &Recorder{}
	a := New(rec.Handle)

	var nilMap map[string]int
	a.Eq(1, 1)
	a.Eq(1, int64(1))
	a.Eq(uint8(7), 7)
	a.Eq(point{1, 2}, point{1, 2})
	a.Eq([]string{"a"}, []string{"a"})
	a.Neq(1, 2)
	a.Neq(-1, uint(18446744073709551615))
	a.Neq(uint8(255), int8(-1))
	a.Neq(uint32(math.MaxUint32), int32(-1))
	a.Eq(uint16(300), int16(300))
	a.Neq(1.5, 1)
	a.Expr(true)
	a.True(true)
	a.False(false)
	a.Nil(nil)
	a.Nil(nilMap)
	a.NotNil(&point{})
	a.NoError(nil)

	testify.NoError(t, rec.Err())
	testify.Empty(t, rec.Failures())
}

func TestCallSite(t *testing.T) {
	rec := &Recorder{}
	a := New(rec.Handle)

	_, file, line, _ := runtime.Caller(0)
	a.Eq(1, 2)

	failures := rec.Failures()
	require.Len(t, failures, 1)
	testify.Equal(t, file, failures[0].File)
	testify.Equal(t, line+1, failures[0].Line)
}

func TestDefaultHandlerPanics(t *testing.T) {
	var recovered any
	var line int
	func() {
		defer func() { recovered = recover() }()
		_, _, line, _ = runtime.Caller(0)
		Eq(1, 2)
	}()

	failure, ok := recovered.(*core.Failure)
	require.True(t, ok, "expected a *core.Failure, got %T", recovered)
	testify.True(t, failure.IsAssertion())
	testify.Equal(t, "Expected [1] saw [2]", failure.Message)
	testify.Equal(t, line+1, failure.Line)
}

func TestSetFailHandler(t *testing.T) {
	rec := &Recorder{}
	previous := SetFailHandler(rec.Handle)
	defer SetFailHandler(previous)

	True(false)
	Nil(1)

	failures := rec.Failures()
	require.Len(t, failures, 2)
	testify.Equal(t, "Expected [true] saw [false]", failures[0].Message)
	testify.Equal(t, "Expected [nil]", failures[1].Message)
	testify.Equal(t, failures[0], rec.Err())
}

func TestStructDiff(t *testing.T) {
	rec := &Recorder{}
	New(rec.Handle).Eq(point{1, 2}, point{1, 3})

	failures := rec.Failures()
	require.Len(t, failures, 1)
	testify.True(t, strings.HasPrefix(failures[0].Message, "Expected [{1 2}] saw [{1 3}]"))
	testify.Contains(t, failures[0].Message, "diff (-expected +actual)")
}
