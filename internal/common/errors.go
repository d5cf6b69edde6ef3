package common

import "errors"

var (
	// ErrorValidation is returned when user input fails validation before
	// any request is sent.
	ErrorValidation = errors.New("validation error")

	// ErrNotLoggedIn is returned by operations that need a credential.
	ErrNotLoggedIn = errors.New("not logged in")
)
