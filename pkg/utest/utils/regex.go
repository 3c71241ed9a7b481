package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// RegexList is a list of patterns, filled one pattern at a time by the
// command line parser.
type RegexList struct {
	patterns []*regexp.Regexp
}

func NewRegexList(patterns ...string) (RegexList, error) {
	var r RegexList
	for _, p := range patterns {
		if err := r.Set(p); err != nil {
			return RegexList{}, err
		}
	}
	return r, nil
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set adds a pattern to the list.
func (r *RegexList) Set(value string) error {
	rx, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	r.patterns = append(r.patterns, rx)
	return nil
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

func (r RegexList) AnyMatch(s string) bool {
	for _, p := range r.patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// RegexFilters selects names matching any of MustMatch (when defined) and
// none of MustNotMatch.
type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

func (r RegexFilters) Match(name string) bool {
	return (!r.MustMatch.IsDefined() || r.MustMatch.AnyMatch(name)) &&
		!r.MustNotMatch.AnyMatch(name)
}

func (r RegexFilters) IsDefined() bool {
	return r.MustMatch.IsDefined() || r.MustNotMatch.IsDefined()
}

// Describe returns a human readable description of the filters, or an empty
// string when no filter is defined.
func (r RegexFilters) Describe() string {
	var parts []string
	if r.MustMatch.IsDefined() {
		parts = append(parts, fmt.Sprintf("skip any not matching %s", r.MustMatch))
	}
	if r.MustNotMatch.IsDefined() {
		parts = append(parts, fmt.Sprintf("skip any matching %s", r.MustNotMatch))
	}
	return strings.Join(parts, "; ")
}
