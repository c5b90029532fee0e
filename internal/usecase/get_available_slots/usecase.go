package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/domain"
	analystRepo "github.com/syednazrin/Amresearch-platform-sub000/internal/infra/storage/analyst"
)

// UseCase resolves the free meeting slots for one calendar day.
type UseCase struct {
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	analystRepo  AnalystRepository
	logger       Logger
}

// NewUseCase creates a new use case instance.
func NewUseCase(
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	analystRepo AnalystRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		analystRepo:  analystRepo,
		logger:       logger,
	}
}

// Execute runs the slot resolution use case.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, analyst=%v",
		req.Date.Format(domain.DateFormat), req.AnalystID)

	// 1. Validate input.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the schedule scope. An unknown or inactive analyst is not
	// an error on this read path; the request falls back to the global
	// schedule so the page always renders something bookable.
	scope, err := uc.resolveScope(ctx, req.AnalystID)
	if err != nil {
		return nil, err
	}

	// 3. Load the scope's rules. The resolver filters by weekday and the
	// active flag itself.
	rules, err := uc.scheduleRepo.ListByScope(ctx, scope)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list rules for %s: %v", scope, err)
		return nil, fmt.Errorf("%w: failed to list availability rules: %v", ErrInternal, err)
	}

	// 4. Load the day's bookings for the same scope. Cancelled rows are
	// included and skipped by the resolver so a cancelled booking frees its
	// slot again.
	bookings, err := uc.bookingRepo.ListWithFilter(ctx, domain.BookingsFilter{
		Scope:            &scope,
		StartDate:        &req.Date,
		EndDate:          &req.Date,
		IncludeCancelled: true,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list bookings for %s: %v", scope, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 5. Resolve the free slots.
	slots, err := resolveAvailableSlots(req.Date, rules, bookings, domain.SlotGranularityMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: resolution failed for %s: %v", scope, err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: %s on %s: %d rules, %d bookings, %d free slots",
		scope, req.Date.Format(domain.DateFormat), len(rules), len(bookings), len(slots))

	return &Response{
		Date:  req.Date,
		Scope: scope,
		Slots: slots,
	}, nil
}

func (uc *UseCase) resolveScope(ctx context.Context, analystID *int64) (domain.Scope, error) {
	if analystID == nil {
		return domain.GlobalScope(), nil
	}

	analyst, err := uc.analystRepo.GetByID(ctx, *analystID)
	if err != nil {
		if errors.Is(err, analystRepo.ErrAnalystNotFound) {
			uc.logger.Warn("GetAvailableSlots: analyst id=%d not found, falling back to global schedule", *analystID)
			return domain.GlobalScope(), nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get analyst id=%d: %v", *analystID, err)
		return domain.Scope{}, fmt.Errorf("%w: failed to get analyst: %v", ErrInternal, err)
	}

	if !analyst.IsActive {
		uc.logger.Warn("GetAvailableSlots: analyst id=%d is inactive, falling back to global schedule", *analystID)
		return domain.GlobalScope(), nil
	}

	return domain.AnalystScope(*analystID), nil
}
