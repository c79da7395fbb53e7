package blockmerge

import (
	"fmt"

	"github.com/zeebo/errs/v2"
)

type Error interface {
	// returns true if the error is fatal
	IsFatal() bool
	// and anything else that is needed to be an error
	error
}

var (
	_ Error = (*PreconditionError)(nil)
	_ Error = (*InvariantError)(nil)
)

// PreconditionError is returned (or, from the array primitives, panicked)
// when a caller passes a range or argument the operation does not accept.
type PreconditionError struct {
	op  string
	msg string
}

func preconditionf(op, format string, args ...any) error {
	return errs.Wrap(&PreconditionError{op: op, msg: fmt.Sprintf(format, args...)})
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("blockmerge: %s: precondition violated: %s", e.op, e.msg)
}

// Op returns the name of the operation that rejected its input.
func (e *PreconditionError) Op() string { return e.op }

// IsFatal returns true if the error is fatal
func (e *PreconditionError) IsFatal() bool { return false }

// InvariantError is returned when the merge engine observes a region that
// broke one of its invariants. The range may hold a permutation of its input
// in arbitrary order.
type InvariantError struct {
	op  string
	msg string
}

func invariantf(op, format string, args ...any) error {
	return errs.Wrap(&InvariantError{op: op, msg: fmt.Sprintf(format, args...)})
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("blockmerge: %s: invariant violated: %s", e.op, e.msg)
}

func (e *InvariantError) Op() string { return e.op }

// IsFatal returns true if the error is fatal
func (e *InvariantError) IsFatal() bool { return true }
