package create_research_document

import (
	"errors"
	"net/http"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers"
	researchService "github.com/syednazrin/Amresearch-platform-sub000/internal/service/research"
	"github.com/syednazrin/Amresearch-platform-sub000/internal/service/research/models"
)

const msgInvalidBody = "invalid request body"

type Handler struct {
	service ResearchService
	logger  Logger
}

func NewHandler(service ResearchService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/research
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDocumentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/research - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, researchService.ErrInvalidInput):
			h.logger.Warn("POST /admin/research - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /admin/research - Failed to create document: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/research - Document created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
