package create_booking

import "errors"

var (
	// ErrInvalidInput is returned for malformed visitor data.
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrAnalystNotFound is returned when the requested analyst does not
	// exist. Unlike the availability read path, booking does not fall back
	// to the global schedule.
	ErrAnalystNotFound = errors.New("create_booking: analyst not found")

	// ErrAnalystInactive is returned when the requested analyst no longer
	// takes meetings.
	ErrAnalystInactive = errors.New("create_booking: analyst is not active")

	// ErrInvalidDate is returned for a booking date in the past.
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidTimeSlot is returned when the requested start time is not
	// one of the slots the schedule generates for that day.
	ErrInvalidTimeSlot = errors.New("create_booking: time does not match an available slot")

	// ErrSlotNotAvailable is returned when another booking already holds
	// the requested slot.
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInternal is returned for repository failures.
	ErrInternal = errors.New("create_booking: internal error")
)
