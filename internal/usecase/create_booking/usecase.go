package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/domain"
	analystRepo "github.com/syednazrin/Amresearch-platform-sub000/internal/infra/storage/analyst"
	bookingRepo "github.com/syednazrin/Amresearch-platform-sub000/internal/infra/storage/booking"
)

// UseCase creates a booking for one resolved slot.
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	analystRepo  AnalystRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates a new use case instance.
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	analystRepo AnalystRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		analystRepo:  analystRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute runs the booking creation use case. The availability check and the
// insert run in a serializable transaction so two visitors racing for the
// same slot cannot both succeed; the partial unique index on the bookings
// table backstops the same invariant at the storage level.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: analyst=%v, date=%s, time=%s, email=%s",
		req.AnalystID, req.Date.Format(domain.DateFormat), req.StartTime, req.VisitorEmail)

	// 1. Validate input.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Reject past dates.
	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Resolve the scope. Booking is stricter than the availability read:
	// a missing or inactive analyst is an error, never a silent fallback to
	// the global schedule.
	scope, err := uc.resolveScope(ctx, req.AnalystID)
	if err != nil {
		return nil, err
	}

	var result *domain.Booking

	// 4. Check-and-insert inside a serializable transaction.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. The requested time must be a slot the schedule generates.
		rules, err := uc.scheduleRepo.ListByScope(txCtx, scope)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list rules for %s: %v", scope, err)
			return fmt.Errorf("%w: failed to list availability rules: %v", ErrInternal, err)
		}
		if !slotOnGrid(req.StartTime, req.Date, rules, domain.SlotGranularityMinutes) {
			uc.logger.Warn("CreateBooking: %s on %s is not a generated slot for %s",
				req.StartTime, req.Date.Format(domain.DateFormat), scope)
			return ErrInvalidTimeSlot
		}

		// 4.2. Lock the day's active bookings (FOR UPDATE) and check the
		// slot is still free.
		bookings, err := uc.bookingRepo.ListWithFilter(txCtx, domain.BookingsFilter{
			Scope:     &scope,
			StartDate: &req.Date,
			EndDate:   &req.Date,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list bookings for %s: %v", scope, err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}
		if slotTaken(req.StartTime, bookings) {
			uc.logger.Warn("CreateBooking: slot %s on %s already taken for %s",
				req.StartTime, req.Date.Format(domain.DateFormat), scope)
			return ErrSlotNotAvailable
		}

		// 4.3. Insert as pending; confirmation is an admin action.
		duration := domain.DefaultMeetingDurationMinutes
		if req.DurationMinutes != nil {
			duration = *req.DurationMinutes
		}

		booking := &domain.Booking{
			AnalystID:       scope.AnalystRef(),
			VisitorName:     strings.TrimSpace(req.VisitorName),
			VisitorEmail:    strings.TrimSpace(req.VisitorEmail),
			VisitorCompany:  req.VisitorCompany,
			Topic:           req.Topic,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: duration,
			Status:          domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: unique index rejected slot %s on %s for %s",
					req.StartTime, req.Date.Format(domain.DateFormat), scope)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d for %s at %s %s",
		result.ID, scope, result.BookingDate.Format(domain.DateFormat), result.StartTime)

	return &Response{Booking: result}, nil
}

func (uc *UseCase) resolveScope(ctx context.Context, analystID *int64) (domain.Scope, error) {
	if analystID == nil {
		return domain.GlobalScope(), nil
	}

	analyst, err := uc.analystRepo.GetByID(ctx, *analystID)
	if err != nil {
		if errors.Is(err, analystRepo.ErrAnalystNotFound) {
			uc.logger.Warn("CreateBooking: analyst id=%d not found", *analystID)
			return domain.Scope{}, ErrAnalystNotFound
		}
		uc.logger.Error("CreateBooking: failed to get analyst id=%d: %v", *analystID, err)
		return domain.Scope{}, fmt.Errorf("%w: failed to get analyst: %v", ErrInternal, err)
	}

	if !analyst.IsActive {
		uc.logger.Warn("CreateBooking: analyst id=%d is inactive", *analystID)
		return domain.Scope{}, ErrAnalystInactive
	}

	return domain.AnalystScope(*analystID), nil
}
