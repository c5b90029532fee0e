package create_booking

import (
	"context"
	"time"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/domain"
)

// BookingRepository persists bookings and lists the day's rows for the
// availability check.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// ScheduleRepository loads availability rules for one scope.
type ScheduleRepository interface {
	ListByScope(ctx context.Context, scope domain.Scope) ([]domain.AvailabilityRule, error)
}

// AnalystRepository resolves analyst references.
type AnalystRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Analyst, error)
}

// TransactionManager runs the availability check and insert atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (swapped out in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time source.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
