package feedback

import "errors"

var (
	// ErrInvalidInput is returned for malformed feedback data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for repository failures.
	ErrInternal = errors.New("service: internal error")
)
