package get_available_slots

import (
	"fmt"
	"sort"
	"time"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/domain"
	"github.com/syednazrin/Amresearch-platform-sub000/pkg/types"
)

// resolveAvailableSlots computes the free slot start times on one calendar
// day. It is a pure function over its arguments: rules are filtered to the
// day's weekday and active flag, each surviving window is walked in
// granularity steps over [start, end), the pooled candidates are sorted and
// de-duplicated, and every candidate whose start time exactly matches a
// non-cancelled booking is dropped.
//
// Exclusion is point equality on the slot start. A booking's duration never
// blocks neighbouring slots, and a booking at an off-grid time (outside any
// window, or between steps) has no effect because it matches no candidate.
//
// A day with no matching rules or no bookings is a normal state, not an
// error; the result just narrows or widens accordingly.
func resolveAvailableSlots(
	date time.Time,
	rules []domain.AvailabilityRule,
	bookings []*domain.Booking,
	granularityMinutes int,
) ([]types.TimeString, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if granularityMinutes <= 0 {
		return nil, fmt.Errorf("%w: granularity must be positive", ErrInvalidInput)
	}

	weekday := date.Weekday()

	candidates := make([]types.TimeString, 0)
	seen := make(map[int]struct{})

	for i := range rules {
		rule := &rules[i]
		if !rule.AppliesTo(weekday) {
			continue
		}
		if err := rule.Validate(); err != nil {
			return nil, fmt.Errorf("%w: rule id=%d: %v", ErrInvalidRule, rule.ID, err)
		}

		// Half-open walk: the last candidate strictly before the window end
		// is emitted even when the remaining stretch is shorter than one
		// full step.
		for cur := rule.StartTime; cur.IsBefore(rule.EndTime); {
			if _, dup := seen[cur.Minutes()]; !dup {
				seen[cur.Minutes()] = struct{}{}
				candidates = append(candidates, cur)
			}

			next, err := cur.AddMinutes(granularityMinutes)
			if err != nil {
				// Window runs to midnight; the day is exhausted.
				break
			}
			cur = next
		}
	}

	// Windows arrive in no guaranteed order; sort so multi-window days stay
	// chronological end to end.
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Minutes() < candidates[j].Minutes()
	})

	free := make([]types.TimeString, 0, len(candidates))
	for _, candidate := range candidates {
		if !slotTaken(candidate, bookings) {
			free = append(free, candidate)
		}
	}

	return free, nil
}

// slotTaken reports whether a non-cancelled booking starts exactly at slot.
func slotTaken(slot types.TimeString, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if b.IsActive() && b.StartTime.Equal(slot) {
			return true
		}
	}
	return false
}
