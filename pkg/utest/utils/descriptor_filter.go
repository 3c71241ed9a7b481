package utils

import "utest/pkg/utest/core"

// DescriptorFilter builds a core.Filter selecting tests whose category is
// accepted by categories and whose ID (category/name) is accepted by names.
// A nil filter accepts everything.
func DescriptorFilter(categories *PathFilter, names *RegexFilters) core.Filter {
	return func(d *core.Descriptor) bool {
		if categories != nil && !categories.Match(d.Category()) {
			return false
		}

		if names != nil && !names.Match(d.ID()) {
			return false
		}

		return true
	}
}
