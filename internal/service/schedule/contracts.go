package schedule

import (
	"context"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/domain"
)

// ScheduleRepository is the storage surface for availability rules.
type ScheduleRepository interface {
	Create(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error)
	GetByID(ctx context.Context, id int64) (*domain.AvailabilityRule, error)
	ListByScope(ctx context.Context, scope domain.Scope) ([]domain.AvailabilityRule, error)
	Update(ctx context.Context, id int64, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error)
	Delete(ctx context.Context, id int64) error
}

// AnalystRepository verifies analyst references on rule creation.
type AnalystRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Analyst, error)
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
