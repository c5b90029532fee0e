package models

import (
	"errors"
	"time"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/domain"
)

var (
	// ErrInvalidStatus is returned for an unknown status string.
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request models

// ListBookingsRequest filters the admin booking list.
type ListBookingsRequest struct {
	AnalystID        *int64     `json:"analystId,omitempty"`
	GlobalOnly       bool       `json:"globalOnly,omitempty"`
	StartDate        *time.Time `json:"startDate,omitempty"`
	EndDate          *time.Time `json:"endDate,omitempty"`
	Status           *string    `json:"status,omitempty"`
	IncludeCancelled bool       `json:"includeCancelled,omitempty"`
}

// ToDomainFilter converts the request into a domain filter. AnalystID and
// GlobalOnly are mutually exclusive scope selectors; with neither set the
// filter spans all scopes.
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.AnalystID != nil {
		scope := domain.AnalystScope(*r.AnalystID)
		filter.Scope = &scope
	} else if r.GlobalOnly {
		scope := domain.GlobalScope()
		filter.Scope = &scope
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// CancelBookingRequest cancels a booking with an audit reason.
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest moves a booking to a new status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response models

// BookingResponse is the booking DTO.
type BookingResponse struct {
	ID              int64   `json:"id"`
	AnalystID       *int64  `json:"analystId,omitempty"`
	VisitorName     string  `json:"visitorName"`
	VisitorEmail    string  `json:"visitorEmail"`
	VisitorCompany  *string `json:"visitorCompany,omitempty"`
	Topic           *string `json:"topic,omitempty"`
	BookingDate     string  `json:"bookingDate"` // "2026-09-07"
	StartTime       string  `json:"startTime"`   // "09:15"
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse is the booking list DTO.
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Converters

// FromDomainBooking converts the domain model into the DTO.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		AnalystID:          b.AnalystID,
		VisitorName:        b.VisitorName,
		VisitorEmail:       b.VisitorEmail,
		VisitorCompany:     b.VisitorCompany,
		Topic:              b.Topic,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		DurationMinutes:    b.DurationMinutes,
		Status:             string(b.Status),
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainBookingList converts a domain slice into the list DTO.
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}
	return resp
}

// ToDomainBookingStatus parses a status string.
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(s) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled:
		return domain.BookingStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}
