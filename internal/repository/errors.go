// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers and the booking service to distinguish between different
// failure scenarios. For example, ErrConflict indicates that an insert
// collided with an existing row on a natural key, while ErrSoldOut
// signals that a screening has no seats left at decision time.
package repository

import "errors"

// ErrConflict is returned when an entity cannot be created because a
// row with the same natural key already exists (theater name, movie
// imdb key or customer user name). Handlers should translate this
// into an HTTP 409 response.
var ErrConflict = errors.New("already exists")

// ErrTheaterNotFound is returned when a referenced theater name does
// not exist.
var ErrTheaterNotFound = errors.New("theater not found")

// ErrMovieNotFound is returned when a referenced imdb key does not
// exist.
var ErrMovieNotFound = errors.New("movie not found")

// ErrScreeningNotFound is returned when a screening id does not exist.
var ErrScreeningNotFound = errors.New("screening not found")

// ErrCustomerNotFound is returned when a user name does not exist.
var ErrCustomerNotFound = errors.New("customer not found")

// ErrSoldOut is returned by ticket issuance when the screening's
// remaining seat count is zero. It is an expected outcome, not a
// storage failure, and callers must not create any state when they
// see it.
var ErrSoldOut = errors.New("no tickets left")
