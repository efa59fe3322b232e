package apperrors

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNoSession       = errors.New("no stored session")
	ErrSessionMismatch = errors.New("session id does not match stored session")
	ErrEmptyAnswer     = errors.New("answer text is empty")
	ErrNotHydrated     = errors.New("session state is not hydrated")
)
