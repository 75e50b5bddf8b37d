package loan

import "errors"

var (
	// ErrInvalidInput means a calculation precondition was violated
	// (non-positive principal/tenure, negative rate). Never retried.
	ErrInvalidInput = errors.New("invalid calculation input")
	// ErrNotFound means no application matched the lookup for the requester.
	ErrNotFound = errors.New("loan application not found")
	// ErrEditNotAllowed means a mutation was attempted outside an editable status.
	ErrEditNotAllowed = errors.New("loan application cannot be edited in its current status")
	// ErrIllegalTransition means the requested status change is not a valid
	// edge in the lifecycle graph.
	ErrIllegalTransition = errors.New("illegal application status transition")
	// ErrNumberConflict means application-number generation kept colliding
	// with existing rows after the bounded retries.
	ErrNumberConflict = errors.New("application number conflict")
)
