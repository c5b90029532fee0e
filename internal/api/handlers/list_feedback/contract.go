package list_feedback

import (
	"context"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/service/feedback/models"
)

type FeedbackService interface {
	List(ctx context.Context) (*models.FeedbackListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
