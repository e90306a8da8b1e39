package apperr

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidEntry = errors.New("invalid entry")
)
