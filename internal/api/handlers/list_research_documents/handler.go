package list_research_documents

import (
	"net/http"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers"
)

type Handler struct {
	service ResearchService
	logger  Logger

	// publishedOnly pins the public feed to published documents; the admin
	// route registers a second handler with it unset.
	publishedOnly bool
}

func NewHandler(service ResearchService, publishedOnly bool, logger Logger) *Handler {
	return &Handler{
		service:       service,
		logger:        logger,
		publishedOnly: publishedOnly,
	}
}

// Handle GET /api/v1/research
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), h.publishedOnly)
	if err != nil {
		h.logger.Error("GET /research - Failed to list documents: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /research - Listed %d documents (publishedOnly=%t)",
		len(result.Documents), h.publishedOnly)
	handlers.RespondJSON(w, http.StatusOK, result)
}
