package get_available_slots

import (
	"context"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/domain"
)

// ScheduleRepository loads availability rules for one scope.
type ScheduleRepository interface {
	ListByScope(ctx context.Context, scope domain.Scope) ([]domain.AvailabilityRule, error)
}

// BookingRepository loads bookings for one scope and day.
type BookingRepository interface {
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// AnalystRepository resolves analyst references for scope selection.
type AnalystRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Analyst, error)
}

// Logger is the logging surface the use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
