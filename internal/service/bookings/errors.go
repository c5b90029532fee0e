package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotCancel is returned for a booking already cancelled.
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInvalidStatus is returned for an unknown status value or a
	// disallowed transition.
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for repository failures.
	ErrInternal = errors.New("service: internal error")
)
