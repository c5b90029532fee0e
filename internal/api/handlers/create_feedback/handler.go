package create_feedback

import (
	"errors"
	"net/http"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers"
	feedbackService "github.com/syednazrin/Amresearch-platform-sub000/internal/service/feedback"
	"github.com/syednazrin/Amresearch-platform-sub000/internal/service/feedback/models"
)

const msgInvalidBody = "invalid request body"

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

// Handle POST /api/v1/feedback
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateFeedbackRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /feedback - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, feedbackService.ErrInvalidInput):
			h.logger.Warn("POST /feedback - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /feedback - Failed to create feedback: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /feedback - Feedback created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
