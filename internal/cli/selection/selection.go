// Package selection holds the test selection flags shared by the commands
// that list and run tests.
package selection

import (
	"fmt"
	"strings"

	"utest/pkg/utest/core"
	"utest/pkg/utest/utils"
)

type Flags struct {
	Categories []string `name:"category" short:"c" help:"Only select tests in these categories" sep:"none"`
	Recursive  bool     `short:"r" help:"Also select tests in sub-categories of the given categories"`
	Match      []string `name:"run" help:"Only select tests whose 'category/name' matches any of these regular expressions" sep:"none"`
	Skip       []string `name:"skip" help:"Skip tests whose 'category/name' matches any of these regular expressions" sep:"none"`
}

// Filter compiles the flags into a core.Filter.
func (f *Flags) Filter() (core.Filter, error) {
	names, err := f.names()
	if err != nil {
		return nil, err
	}

	return utils.DescriptorFilter(utils.NewPathFilterFromSlice(f.Categories, f.Recursive), &names), nil
}

// Describe returns a human readable summary of the selection, or an empty
// string when every test is selected.
func (f *Flags) Describe() string {
	var parts []string
	if len(f.Categories) != 0 {
		mode := "in categories"
		if f.Recursive {
			mode = "in or under categories"
		}
		parts = append(parts, fmt.Sprintf("%s %s", mode, strings.Join(f.Categories, ", ")))
	}

	if names, err := f.names(); err == nil && names.IsDefined() {
		parts = append(parts, names.Describe())
	}

	return strings.Join(parts, "; ")
}

func (f *Flags) names() (utils.RegexFilters, error) {
	mustMatch, err := utils.NewRegexList(f.Match...)
	if err != nil {
		return utils.RegexFilters{}, fmt.Errorf("bad --run pattern: %w", err)
	}

	mustNotMatch, err := utils.NewRegexList(f.Skip...)
	if err != nil {
		return utils.RegexFilters{}, fmt.Errorf("bad --skip pattern: %w", err)
	}

	return utils.RegexFilters{MustMatch: mustMatch, MustNotMatch: mustNotMatch}, nil
}
