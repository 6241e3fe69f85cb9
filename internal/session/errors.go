package session

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState is returned for operations outside the Active state.
	ErrInvalidState     = errors.New("invalid session state")
	ErrIndexOutOfRange  = errors.New("exercise or set index out of range")
	ErrMissingPlan      = errors.New("cannot save, missing plan context")
	ErrInvalidDirection = errors.New("invalid navigation direction")
	ErrInvalidField     = errors.New("invalid set field")
	ErrNoActiveSession  = errors.New("no active workout session")
)

// CollaboratorError wraps a failure of a plan or history store call.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}
