package repository

import "errors"

// Sentinel errors returned by the repositories. Callers match these with
// errors.Is and map them to HTTP status codes.
var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when an insert violates the users email
	// unique constraint.
	ErrEmailTaken = errors.New("email already in use")

	// ErrTaskNotFound is returned when no task matches the given id for
	// the given owner. A task owned by someone else is indistinguishable
	// from a task that does not exist.
	ErrTaskNotFound = errors.New("task not found")
)
