package list_analysts

import (
	"context"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/service/analysts/models"
)

type AnalystsService interface {
	List(ctx context.Context, includeInactive bool) (*models.AnalystListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
