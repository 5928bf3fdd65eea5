package domain

import "errors"

// Sentinel errors shared by the services and adapter surfaces. Callers match
// them with errors.Is.
var (
	ErrEmptyBaseSecret     = errors.New("base secret is empty")
	ErrEmptySalt           = errors.New("salt is empty")
	ErrEmptyStoredPassword = errors.New("stored password is empty")
	ErrInvalidIterations   = errors.New("iteration count must be positive")
	ErrUnknownVariant      = errors.New("unknown variant label")
)
