package create_schedule_rule

import (
	"errors"
	"net/http"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers"
	scheduleService "github.com/syednazrin/Amresearch-platform-sub000/internal/service/schedule"
	"github.com/syednazrin/Amresearch-platform-sub000/internal/service/schedule/models"
)

const (
	msgInvalidBody     = "invalid request body"
	msgAnalystNotFound = "analyst not found"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/schedule-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/schedule-rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("POST /admin/schedule-rules - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, scheduleService.ErrAnalystNotFound):
			h.logger.Warn("POST /admin/schedule-rules - Analyst not found: analyst=%v", req.AnalystID)
			handlers.RespondNotFound(w, msgAnalystNotFound)

		default:
			h.logger.Error("POST /admin/schedule-rules - Failed to create rule: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/schedule-rules - Rule created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
