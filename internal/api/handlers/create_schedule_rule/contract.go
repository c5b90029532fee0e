package create_schedule_rule

import (
	"context"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/service/schedule/models"
)

type ScheduleService interface {
	Create(ctx context.Context, req *models.CreateRuleRequest) (*models.RuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
