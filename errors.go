package inkhit

import "errors"

var (
	// ErrInvalidArgument indicates a caller contract violation, e.g. an empty
	// point batch, a percentage outside 0…100 or a malformed stylus shape.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidOperation indicates a call on a hit tester which has already
	// been ended.
	ErrInvalidOperation = errors.New("invalid operation")
)
