package create_booking

import (
	"fmt"
	"time"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/domain"
	"github.com/syednazrin/Amresearch-platform-sub000/internal/service/bookings/models"
	createBooking "github.com/syednazrin/Amresearch-platform-sub000/internal/usecase/create_booking"
	"github.com/syednazrin/Amresearch-platform-sub000/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	AnalystID       *int64  `json:"analystId,omitempty"`
	VisitorName     string  `json:"visitorName"`
	VisitorEmail    string  `json:"visitorEmail"`
	VisitorCompany  *string `json:"visitorCompany,omitempty"`
	Topic           *string `json:"topic,omitempty"`
	Date            string  `json:"date"`      // "2026-09-07"
	StartTime       string  `json:"startTime"` // "09:15"
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
}

// ToUseCaseRequest converts the HTTP request into the use case request.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("start time: %w", err)
	}

	return &createBooking.Request{
		AnalystID:       r.AnalystID,
		VisitorName:     r.VisitorName,
		VisitorEmail:    r.VisitorEmail,
		VisitorCompany:  r.VisitorCompany,
		Topic:           r.Topic,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
	}, nil
}

// FromUseCaseResponse converts the use case response into the booking DTO.
func FromUseCaseResponse(resp *createBooking.Response) *models.BookingResponse {
	return models.FromDomainBooking(resp.Booking)
}
