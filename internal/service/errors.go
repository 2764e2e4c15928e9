package service

import "errors"

var (
	// ErrInvalidCredentials is returned on any login failure. An unknown
	// email and a wrong password are deliberately indistinguishable so the
	// API cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNoUpdateFields is returned when a task update carries no fields.
	ErrNoUpdateFields = errors.New("at least one field must be provided")
)
