package uutiset

import "errors"

var (
	// ErrMissingCredentials means email or password was empty; no storage
	// access has happened.
	ErrMissingCredentials = errors.New("email and password required")
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so the caller cannot tell which field was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidInput means a required news field was empty after trimming.
	ErrInvalidInput = errors.New("invalid news input")
	// ErrCategoryNotFound means the named category does not exist; nothing
	// was persisted.
	ErrCategoryNotFound = errors.New("category not found")
)
