package update_analyst

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers"
	analystsService "github.com/syednazrin/Amresearch-platform-sub000/internal/service/analysts"
	"github.com/syednazrin/Amresearch-platform-sub000/internal/service/analysts/models"
)

const (
	msgInvalidAnalystID = "invalid analyst ID"
	msgInvalidBody      = "invalid request body"
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

// Handle PATCH /api/v1/admin/analysts/{analystId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	analystID, err := strconv.ParseInt(vars["analystId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/analysts/{id} - Invalid analyst ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAnalystID)
		return
	}

	var req models.UpdateAnalystRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/analysts/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Update(r.Context(), analystID, &req)
	if err != nil {
		switch {
		case errors.Is(err, analystsService.ErrAnalystNotFound):
			h.logger.Warn("PATCH /admin/analysts/{id} - Analyst not found: id=%d", analystID)
			handlers.RespondNotFound(w, msgAnalystNotFound)

		case errors.Is(err, analystsService.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/analysts/{id} - Validation failed for analyst id=%d: %v", analystID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /admin/analysts/{id} - Failed to update analyst id=%d: %v", analystID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/analysts/{id} - Analyst updated: id=%d", analystID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
