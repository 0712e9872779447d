package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnknownRule     = errors.New("unknown rule")
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidConfig   = errors.New("invalid configuration")
)
