package analysts

import "errors"

var (
	// ErrAnalystNotFound is returned when the analyst does not exist.
	ErrAnalystNotFound = errors.New("analyst not found")

	// ErrInvalidInput is returned for malformed analyst data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for repository failures.
	ErrInternal = errors.New("service: internal error")
)
