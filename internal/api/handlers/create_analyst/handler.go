package create_analyst

import (
	"errors"
	"net/http"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers"
	analystsService "github.com/syednazrin/Amresearch-platform-sub000/internal/service/analysts"
	"github.com/syednazrin/Amresearch-platform-sub000/internal/service/analysts/models"
)

const msgInvalidBody = "invalid request body"

type Handler struct {
	service AnalystsService
	logger  Logger
}

func NewHandler(service AnalystsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/analysts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAnalystRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/analysts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, analystsService.ErrInvalidInput):
			h.logger.Warn("POST /admin/analysts - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /admin/analysts - Failed to create analyst: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/analysts - Analyst created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
