package create_feedback

import (
	"context"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/service/feedback/models"
)

type FeedbackService interface {
	Create(ctx context.Context, req *models.CreateFeedbackRequest) (*models.FeedbackResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
