package registry

import "utest/pkg/utest/core"

// AutoRegistered is the value left behind by a registration. Declaring one at
// package scope,
//
//	var _ = registry.Register(descriptor)
//
// adds the test to the process-wide registry while the package is
// initialized.
//
// Go only initializes packages that are imported by the binary. Packages
// that do nothing but declare tests must therefore be imported for their
// side effects (import _ "example.com/project/tests") by the program running
// them, or their tests are silently missing.
type AutoRegistered struct {
	descriptor *core.Descriptor
}

func Register(d *core.Descriptor) AutoRegistered {
	Get().Add(d)
	return AutoRegistered{descriptor: d}
}

func (a AutoRegistered) Descriptor() *core.Descriptor {
	return a.descriptor
}
