package feedback

import (
	"context"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/domain"
)

// FeedbackRepository is the storage surface for visitor feedback.
type FeedbackRepository interface {
	Create(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error)
	List(ctx context.Context) ([]*domain.Feedback, error)
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
