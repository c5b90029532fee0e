package create_booking

import (
	"time"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/domain"
	"github.com/syednazrin/Amresearch-platform-sub000/pkg/types"
)

// slotOnGrid reports whether start is a slot the scope's schedule actually
// generates on the given day: inside an active window for that weekday and
// aligned to the granularity step from the window's start.
func slotOnGrid(start types.TimeString, date time.Time, rules []domain.AvailabilityRule, granularityMinutes int) bool {
	weekday := date.Weekday()
	for i := range rules {
		rule := &rules[i]
		if !rule.AppliesTo(weekday) {
			continue
		}
		if rule.Validate() != nil {
			continue
		}
		if start.IsBefore(rule.StartTime) || !start.IsBefore(rule.EndTime) {
			continue
		}
		if (start.Minutes()-rule.StartTime.Minutes())%granularityMinutes == 0 {
			return true
		}
	}
	return false
}

// slotTaken reports whether a non-cancelled booking already starts at slot.
func slotTaken(slot types.TimeString, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if b.IsActive() && b.StartTime.Equal(slot) {
			return true
		}
	}
	return false
}
