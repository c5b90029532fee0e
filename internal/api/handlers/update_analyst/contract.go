package update_analyst

import (
	"context"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/service/analysts/models"
)

type AnalystsService interface {
	Update(ctx context.Context, id int64, req *models.UpdateAnalystRequest) (*models.AnalystResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
