// Package registry holds the process-wide collection of declared tests.
//
// Tests are added while packages are being initialized, which Go does
// sequentially before main starts. After that the registry is only read.
// Registry is not safe for concurrent mutation: Add must not be called once
// tests may be running.
package registry

import (
	"iter"
	"slices"
	"sync"

	"utest/pkg/utest/core"
)

type Registry struct {
	tests []*core.Descriptor
}

var (
	instance     *Registry
	instanceOnce sync.Once
)

// Get returns the process-wide registry, creating it on first use.
func Get() *Registry {
	instanceOnce.Do(func() {
		instance = New()
	})

	return instance
}

// New creates an empty registry that is independent from the process-wide
// one.
func New() *Registry {
	return &Registry{
		tests: make([]*core.Descriptor, 0),
	}
}

// Add appends a test to the registry. Duplicates are not detected.
func (r *Registry) Add(d *core.Descriptor) {
	r.tests = append(r.tests, d)
}

// Tests returns the registered tests in registration order. The returned
// slice is the registry's own storage, not a copy.
func (r *Registry) Tests() []*core.Descriptor {
	return r.tests
}

// All iterates over the registered tests in registration order.
func (r *Registry) All() iter.Seq[*core.Descriptor] {
	return slices.Values(r.tests)
}

func (r *Registry) Len() int {
	return len(r.tests)
}
