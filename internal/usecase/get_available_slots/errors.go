package get_available_slots

import "errors"

var (
	// ErrInvalidInput is returned for a malformed request (zero date,
	// non-positive analyst id).
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInvalidRule is returned when a stored rule carries a malformed
	// window; it signals bad data, not an empty schedule.
	ErrInvalidRule = errors.New("get_available_slots: invalid availability rule")

	// ErrInternal is returned for repository failures.
	ErrInternal = errors.New("get_available_slots: internal error")
)
