package list_schedule_rules

import (
	"net/http"
	"strconv"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers"
)

const msgInvalidAnalystID = "invalid analyst ID"

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

// Handle GET /api/v1/admin/schedule-rules
// Query params: analystId (optional, absent = global schedule)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var analystID *int64
	if analystIDStr := r.URL.Query().Get("analystId"); analystIDStr != "" {
		id, err := strconv.ParseInt(analystIDStr, 10, 64)
		if err != nil || id <= 0 {
			h.logger.Warn("GET /admin/schedule-rules - Invalid analyst ID %q", analystIDStr)
			handlers.RespondBadRequest(w, msgInvalidAnalystID)
			return
		}
		analystID = &id
	}

	result, err := h.service.List(r.Context(), analystID)
	if err != nil {
		h.logger.Error("GET /admin/schedule-rules - Failed to list rules: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/schedule-rules - Listed %d rules, analyst=%v", len(result.Rules), analystID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
