package analysts

import (
	"context"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/domain"
)

// AnalystRepository is the storage surface for analysts.
type AnalystRepository interface {
	Create(ctx context.Context, a *domain.Analyst) (*domain.Analyst, error)
	GetByID(ctx context.Context, id int64) (*domain.Analyst, error)
	List(ctx context.Context, includeInactive bool) ([]*domain.Analyst, error)
	Update(ctx context.Context, id int64, a *domain.Analyst) (*domain.Analyst, error)
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
