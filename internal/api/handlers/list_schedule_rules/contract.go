package list_schedule_rules

import (
	"context"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/service/schedule/models"
)

type ScheduleService interface {
	List(ctx context.Context, analystID *int64) (*models.RuleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
