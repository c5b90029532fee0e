package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers"
	getAvailableSlots "github.com/syednazrin/Amresearch-platform-sub000/internal/usecase/get_available_slots"
)

const (
	msgMissingDate      = "date is required"
	msgInvalidDate      = "invalid date format, expected YYYY-MM-DD"
	msgInvalidAnalystID = "invalid analyst ID"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date (required, YYYY-MM-DD), analystId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	var analystID *int64
	if analystIDStr := r.URL.Query().Get("analystId"); analystIDStr != "" {
		id, err := strconv.ParseInt(analystIDStr, 10, 64)
		if err != nil || id <= 0 {
			h.logger.Warn("GET /availability - Invalid analyst ID %q", analystIDStr)
			handlers.RespondBadRequest(w, msgInvalidAnalystID)
			return
		}
		analystID = &id
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, analystID)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /availability - Failed to resolve slots: date=%s, analyst=%v, error=%v",
				dateStr, analystID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Slots resolved: date=%s, scope=%s, slots_count=%d",
		dateStr, result.Scope, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
