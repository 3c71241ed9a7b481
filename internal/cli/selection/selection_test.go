package selection

import (
	"testing"

	"utest/pkg/utest/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func descriptor(name, category string) *core.Descriptor {
	return core.NewDescriptor(nil, name, category, "x_test.go", 1)
}

func TestFilter(t *testing.T) {
	add := descriptor("Add", "math")
	sqrt := descriptor("Sqrt", "math/float")
	split := descriptor("Split", "text")

	tests := []struct {
		name     string
		flags    Flags
		expected []bool
	}{
		{"empty", Flags{}, []bool{true, true, true}},
		{"category", Flags{Categories: []string{"math"}}, []bool{true, false, false}},
		{"recursive", Flags{Categories: []string{"math"}, Recursive: true}, []bool{true, true, false}},
		{"run", Flags{Match: []string{"^math/"}}, []bool{true, true, false}},
		{"skip", Flags{Skip: []string{"Sqrt$"}}, []bool{true, false, true}},
		{"combined", Flags{Categories: []string{"math"}, Recursive: true, Skip: []string{"Add"}}, []bool{false, true, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := tt.flags.Filter()
			require.NoError(t, err)

			assert.Equal(t, tt.expected, []bool{filter(add), filter(sqrt), filter(split)})
		})
	}
}

func TestFilterBadPattern(t *testing.T) {
	_, err := (&Flags{Match: []string{"("}}).Filter()
	assert.ErrorContains(t, err, "bad --run pattern")

	_, err = (&Flags{Skip: []string{"["}}).Filter()
	assert.ErrorContains(t, err, "bad --skip pattern")
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "", (&Flags{}).Describe())
	assert.Equal(t, "in or under categories math, text", (&Flags{Categories: []string{"math", "text"}, Recursive: true}).Describe())
	assert.Equal(t, `in categories math; skip any matching "Sqrt"`, (&Flags{Categories: []string{"math"}, Skip: []string{"Sqrt"}}).Describe())
}
