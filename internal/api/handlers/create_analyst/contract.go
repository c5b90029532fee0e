package create_analyst

import (
	"context"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/service/analysts/models"
)

type AnalystsService interface {
	Create(ctx context.Context, req *models.CreateAnalystRequest) (*models.AnalystResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
