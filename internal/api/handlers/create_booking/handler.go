package create_booking

import (
	"errors"
	"net/http"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers"
	createBooking "github.com/syednazrin/Amresearch-platform-sub000/internal/usecase/create_booking"
)

const (
	msgInvalidBody      = "invalid request body"
	msgAnalystNotFound  = "analyst not found"
	msgAnalystInactive  = "analyst is not taking meetings"
	msgInvalidTimeSlot  = "time does not match an available slot"
	msgSlotNotAvailable = "slot is no longer available"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid request fields: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput),
			errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrAnalystNotFound):
			h.logger.Warn("POST /bookings - Analyst not found: analyst=%v", req.AnalystID)
			handlers.RespondNotFound(w, msgAnalystNotFound)

		case errors.Is(err, createBooking.ErrAnalystInactive):
			h.logger.Warn("POST /bookings - Analyst inactive: analyst=%v", req.AnalystID)
			handlers.RespondError(w, http.StatusConflict, msgAnalystInactive)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: date=%s, time=%s, analyst=%v",
				req.Date, req.StartTime, req.AnalystID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: id=%d, date=%s, time=%s",
		result.Booking.ID, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
