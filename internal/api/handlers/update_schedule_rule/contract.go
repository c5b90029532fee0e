package update_schedule_rule

import (
	"context"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/service/schedule/models"
)

type ScheduleService interface {
	Update(ctx context.Context, id int64, req *models.UpdateRuleRequest) (*models.RuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
