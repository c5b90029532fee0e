package update_schedule_rule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers"
	scheduleService "github.com/syednazrin/Amresearch-platform-sub000/internal/service/schedule"
	"github.com/syednazrin/Amresearch-platform-sub000/internal/service/schedule/models"
)

const (
	msgInvalidRuleID = "invalid rule ID"
	msgInvalidBody   = "invalid request body"
	msgRuleNotFound  = "availability rule not found"
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

// Handle PATCH /api/v1/admin/schedule-rules/{ruleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	ruleID, err := strconv.ParseInt(vars["ruleId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/schedule-rules/{id} - Invalid rule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRuleID)
		return
	}

	var req models.UpdateRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/schedule-rules/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Update(r.Context(), ruleID, &req)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrRuleNotFound):
			h.logger.Warn("PATCH /admin/schedule-rules/{id} - Rule not found: id=%d", ruleID)
			handlers.RespondNotFound(w, msgRuleNotFound)

		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/schedule-rules/{id} - Validation failed for rule id=%d: %v", ruleID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /admin/schedule-rules/{id} - Failed to update rule id=%d: %v", ruleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/schedule-rules/{id} - Rule updated: id=%d", ruleID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
