package booking

import "errors"

// The booking engine reports its outcomes as first-class errors so
// callers can branch on them without inspecting storage internals.
// Anything not listed here is an internal storage failure; retrying
// re-runs the whole protocol and can never double-book because the
// seat decrement is guarded in the store.
var (
	// ErrUnauthorized means the user name is unknown or the password
	// did not match. Nothing was changed.
	ErrUnauthorized = errors.New("wrong user credentials")

	// ErrScreeningNotFound means the screening id does not exist.
	ErrScreeningNotFound = errors.New("screening not found")

	// ErrSoldOut means the screening had no seats left at decision
	// time. This is an expected, frequent outcome, not a failure of
	// the service.
	ErrSoldOut = errors.New("no tickets left")

	// ErrBusy means the per-screening lock could not be acquired
	// within the bounded wait. The booking was not attempted and the
	// caller may retry.
	ErrBusy = errors.New("screening busy, retry")
)
