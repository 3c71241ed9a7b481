// Package collector inspects the registered tests before they are listed or
// run, flagging declarations that would be confusing to select from the
// command line.
package collector

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"utest/pkg/utest/core"
)

var (
	namePattern     = regexp.MustCompile(`^[A-Za-z0-9_.\-]+$`)
	categoryPattern = regexp.MustCompile(`^[A-Za-z0-9_.\-]+(/[A-Za-z0-9_.\-]+)*$`)
)

type Inventory struct {
	Tests      []*core.Descriptor
	Categories []string
	Warnings   []string
}

// Collect builds the inventory of the given tests. Problems are reported as
// warnings only; every test stays selectable.
func Collect(tests []*core.Descriptor) Inventory {
	inv := Inventory{
		Tests: tests,
	}

	seen := make(map[string]*core.Descriptor)
	categories := make(map[string]bool)
	for _, d := range tests {
		if first, exists := seen[d.ID()]; exists {
			inv.Warnings = append(inv.Warnings,
				fmt.Sprintf("test '%s' declared at %s is already declared at %s", d.ID(), d.Location(), first.Location()))
		} else {
			seen[d.ID()] = d
		}

		if err := ValidateName(d.Name()); err != nil {
			inv.Warnings = append(inv.Warnings, fmt.Sprintf("%s: %v", d.Location(), err))
		}

		if err := ValidateCategory(d.Category()); err != nil {
			inv.Warnings = append(inv.Warnings, fmt.Sprintf("%s: %v", d.Location(), err))
		}

		if d.Factory() == nil {
			inv.Warnings = append(inv.Warnings, fmt.Sprintf("test '%s' declared at %s has no factory", d.ID(), d.Location()))
		}

		categories[d.Category()] = true
	}

	for category := range categories {
		inv.Categories = append(inv.Categories, category)
	}
	slices.Sort(inv.Categories)

	return inv
}

func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("test name '%s' must be non-empty and contain only letters, digits, '_', '.' or '-'", name)
	}

	return nil
}

// ValidateCategory accepts an empty category or '/' separated segments
// following the test name rules.
func ValidateCategory(category string) error {
	if category == "" {
		return nil
	}

	if !categoryPattern.MatchString(strings.TrimSpace(category)) || strings.TrimSpace(category) != category {
		return fmt.Errorf("category '%s' must be '/' separated segments of letters, digits, '_', '.' or '-'", category)
	}

	return nil
}
