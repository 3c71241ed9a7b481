package utesterror

import "fmt"

// PanicError is produced when a test phase panics with anything other than
// an assertion failure.
type PanicError struct {
	any
	Stack []byte
}

func NewPanicError(any any, stack []byte) PanicError {
	return PanicError{
		any:   any,
		Stack: stack,
	}
}

// Value returns the value the phase panicked with.
func (pe PanicError) Value() any {
	return pe.any
}

func (pe PanicError) Error() string {
	return fmt.Sprintf("panic occurred: %v", pe.any)
}

// Unwrap exposes the panic value when it was an error itself.
func (pe PanicError) Unwrap() error {
	if err, ok := pe.any.(error); ok {
		return err
	}
	return nil
}
