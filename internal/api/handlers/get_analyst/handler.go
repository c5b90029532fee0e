package get_analyst

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers"
	analystsService "github.com/syednazrin/Amresearch-platform-sub000/internal/service/analysts"
)

const (
	msgInvalidAnalystID = "invalid analyst ID"
	msgAnalystNotFound  = "analyst not found"
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

// Handle GET /api/v1/analysts/{analystId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	analystID, err := strconv.ParseInt(vars["analystId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /analysts/{id} - Invalid analyst ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAnalystID)
		return
	}

	result, err := h.service.GetByID(r.Context(), analystID)
	if err != nil {
		switch {
		case errors.Is(err, analystsService.ErrAnalystNotFound):
			h.logger.Warn("GET /analysts/{id} - Analyst not found: id=%d", analystID)
			handlers.RespondNotFound(w, msgAnalystNotFound)

		default:
			h.logger.Error("GET /analysts/{id} - Failed to get analyst id=%d: %v", analystID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
