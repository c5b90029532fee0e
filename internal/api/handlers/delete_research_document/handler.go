package delete_research_document

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers"
	researchService "github.com/syednazrin/Amresearch-platform-sub000/internal/service/research"
)

const (
	msgInvalidDocumentID = "invalid document ID"
	msgDocumentNotFound  = "research document not found"
)

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

// Handle DELETE /api/v1/admin/research/{documentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	documentID, err := strconv.ParseInt(vars["documentId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/research/{id} - Invalid document ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDocumentID)
		return
	}

	if err := h.service.Delete(r.Context(), documentID); err != nil {
		switch {
		case errors.Is(err, researchService.ErrDocumentNotFound):
			h.logger.Warn("DELETE /admin/research/{id} - Document not found: id=%d", documentID)
			handlers.RespondNotFound(w, msgDocumentNotFound)

		default:
			h.logger.Error("DELETE /admin/research/{id} - Failed to delete document id=%d: %v", documentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/research/{id} - Document deleted: id=%d", documentID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
