package acengine

import "github.com/pkg/errors"

// PreconditionError is the panic value raised when a caller violates
// one of the engine's documented preconditions: removing a value that
// is not in the current domain, constructing assign with a value
// outside the variable's initial domain, querying an unknown variable
// handle, or creating a variable with an empty domain. Per the error
// handling design, these are programmer errors, not recoverable
// solver states, so the engine signals them loudly instead of
// returning an error value that could be silently ignored.
type PreconditionError struct {
	err error
}

// Error implements the error interface.
func (e *PreconditionError) Error() string { return e.err.Error() }

// Unwrap exposes the underlying stack-carrying error.
func (e *PreconditionError) Unwrap() error { return e.err }

// fail panics with a PreconditionError built from errors.Errorf, which
// attaches a stack trace useful for locating the offending call site.
func fail(format string, args ...interface{}) {
	panic(&PreconditionError{err: errors.Errorf(format, args...)})
}

// assertf panics with a PreconditionError if cond is false.
func assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		fail(format, args...)
	}
}
