package domain

import (
	"time"

	"github.com/syednazrin/Amresearch-platform-sub000/pkg/types"
)

// BookingStatus represents the status of a meeting booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking is a visitor's claim on one generated slot. The stored value pins
// the exact slot start (date + wall-clock time); duration is informational
// and does not widen the slot the booking occupies.
type Booking struct {
	ID              int64
	AnalystID       *int64 // nil = booked against the global schedule
	VisitorName     string
	VisitorEmail    string
	VisitorCompany  *string
	Topic           *string
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Scope returns the schedule this booking counts against.
func (b *Booking) Scope() Scope {
	return ScopeFromAnalystID(b.AnalystID)
}

// IsActive reports whether the booking still occupies its slot. Only
// cancelled bookings release a slot.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled reports whether a cancellation is a valid transition.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// BookingsFilter narrows booking list queries.
type BookingsFilter struct {
	Scope            *Scope     // nil = any scope
	StartDate        *time.Time // calendar-day lower bound, inclusive
	EndDate          *time.Time // calendar-day upper bound, inclusive
	Status           *BookingStatus
	IncludeCancelled bool // ignored when Status is set
}
