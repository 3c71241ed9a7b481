package utils

import "strings"

// A filter that matches '/' separated paths, such as test categories. An
// empty filter matches everything.
type PathFilter struct {
	recursive bool
	contents  map[string]bool
}

func NewPathFilterFromSlice(slice []string, recursive bool) *PathFilter {
	contents := make(map[string]bool)
	for _, item := range slice {
		contents[strings.Trim(item, "/")] = true
	}

	return &PathFilter{recursive, contents}
}

func (f *PathFilter) Match(item string) bool {
	if len(f.contents) == 0 {
		return true
	}

	item = strings.Trim(item, "/")
	if !f.recursive {
		_, ok := f.contents[item]
		return ok
	}

	for path := range f.contents {
		if pathIsBase(path, item) {
			return true
		}
	}

	return false
}

// Returns whether `base` is a base of `path`.
//
// For example:
//
//	pathIsBase("a/b/c", "a/b/c/d/e") == true
//	pathIsBase("a/b/c", "a/b/c") == true
//	pathIsBase("a/b/c", "a/b") == false
//	pathIsBase("a/b/z", "a/b/c/d") == false
func pathIsBase(base, path string) bool {
	// First check as pure strings
	if !strings.HasPrefix(path, base) {
		return false
	}

	baseComponents := strings.Split(base, "/")
	pathComponents := strings.Split(path, "/")

	for i, baseComponent := range baseComponents {
		if i >= len(pathComponents) {
			return false
		}

		if baseComponent != pathComponents[i] {
			return false
		}
	}

	return true
}
