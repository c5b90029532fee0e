package list_analysts

import (
	"net/http"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers"
)

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

// Handle GET /api/v1/analysts
// Query params: includeInactive (optional, admin views pass true)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("includeInactive") == "true"

	result, err := h.service.List(r.Context(), includeInactive)
	if err != nil {
		h.logger.Error("GET /analysts - Failed to list analysts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /analysts - Listed %d analysts", len(result.Analysts))
	handlers.RespondJSON(w, http.StatusOK, result)
}
