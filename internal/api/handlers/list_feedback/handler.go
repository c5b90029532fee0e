package list_feedback

import (
	"net/http"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers"
)

type Handler struct {
	service FeedbackService
	logger  Logger
}

func NewHandler(service FeedbackService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/feedback
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/feedback - Failed to list feedback: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/feedback - Listed %d entries", len(result.Feedback))
	handlers.RespondJSON(w, http.StatusOK, result)
}
