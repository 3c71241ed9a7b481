package core

import "fmt"

// Factory creates a fresh instance of a test for a single execution.
type Factory func() Test

// Descriptor identifies one declared test case. It is immutable once created
// and is always passed around by pointer.
type Descriptor struct {
	factory  Factory
	name     string
	category string
	file     string
	line     int
}

func NewDescriptor(factory Factory, name, category, file string, line int) *Descriptor {
	return &Descriptor{
		factory:  factory,
		name:     name,
		category: category,
		file:     file,
		line:     line,
	}
}

// Factory returns the function creating new instances of the test.
func (d *Descriptor) Factory() Factory {
	return d.factory
}

func (d *Descriptor) Name() string {
	return d.name
}

func (d *Descriptor) Category() string {
	return d.category
}

// File returns the source file the test was declared in.
func (d *Descriptor) File() string {
	return d.file
}

// Line returns the source line the test was declared at.
func (d *Descriptor) Line() int {
	return d.line
}

// Location returns the declaration site formatted as file:line.
func (d *Descriptor) Location() string {
	return fmt.Sprintf("%s:%d", d.file, d.line)
}

// ID returns the category qualified name of the test, eg. "math/Addition".
func (d *Descriptor) ID() string {
	if d.category == "" {
		return d.name
	}

	return d.category + "/" + d.name
}

func (d *Descriptor) String() string {
	return d.ID()
}
