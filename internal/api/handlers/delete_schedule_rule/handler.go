package delete_schedule_rule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers"
	scheduleService "github.com/syednazrin/Amresearch-platform-sub000/internal/service/schedule"
)

const (
	msgInvalidRuleID = "invalid rule ID"
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

// Handle DELETE /api/v1/admin/schedule-rules/{ruleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	ruleID, err := strconv.ParseInt(vars["ruleId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/schedule-rules/{id} - Invalid rule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRuleID)
		return
	}

	if err := h.service.Delete(r.Context(), ruleID); err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrRuleNotFound):
			h.logger.Warn("DELETE /admin/schedule-rules/{id} - Rule not found: id=%d", ruleID)
			handlers.RespondNotFound(w, msgRuleNotFound)

		default:
			h.logger.Error("DELETE /admin/schedule-rules/{id} - Failed to delete rule id=%d: %v", ruleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/schedule-rules/{id} - Rule deleted: id=%d", ruleID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
