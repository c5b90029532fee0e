package create_booking

import (
	"time"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/domain"
	"github.com/syednazrin/Amresearch-platform-sub000/pkg/types"
)

// Request carries a visitor's booking attempt. AnalystID selects the
// analyst's schedule; nil books against the firm-wide global schedule.
// DurationMinutes is optional and defaults to the standard meeting length.
type Request struct {
	AnalystID       *int64
	VisitorName     string
	VisitorEmail    string
	VisitorCompany  *string
	Topic           *string
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes *int
}

// Response returns the created booking.
type Response struct {
	Booking *domain.Booking
}
