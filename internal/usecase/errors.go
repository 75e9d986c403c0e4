package usecase

import "errors"

// Workflow error taxonomy. Every Execute failure wraps exactly one of these
// so the HTTP layer (and any other transport) can map outcomes with
// errors.Is. None are retried by the engine itself; only ErrStaleVersion
// invites the caller to reload and resubmit.
var (
	ErrNotFound           = errors.New("entity not found")
	ErrIllegalTransition  = errors.New("illegal transition")
	ErrForbiddenRole      = errors.New("role not permitted for this transition")
	ErrTerminalState      = errors.New("entity is in a terminal state")
	ErrStaleVersion       = errors.New("stale version")
	ErrMissingPayload     = errors.New("missing payload for transition")
	ErrIncompleteDispatch = errors.New("incomplete dispatch details")
	ErrEmptyQuote         = errors.New("quote has no line items")
	ErrAlreadyResolved    = errors.New("quote already resolved")
	ErrDispatchAttached   = errors.New("dispatch already attached")

	ErrInvalidEntityID = errors.New("invalid entity id")
	ErrInvalidActor    = errors.New("invalid actor")
	ErrInvalidCommand  = errors.New("invalid command")
)
