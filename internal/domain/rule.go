package domain

import (
	"fmt"
	"time"

	"github.com/syednazrin/Amresearch-platform-sub000/pkg/types"
)

// AvailabilityRule is one recurring weekly open window: on DayOfWeek the
// owning scope accepts meetings in [StartTime, EndTime). Several rules may
// share a weekday to model split days (e.g. 09:00-12:00 and 14:00-17:00).
type AvailabilityRule struct {
	ID        int64
	Scope     Scope
	DayOfWeek int // 0 = Sunday, matching time.Weekday
	StartTime types.TimeString
	EndTime   types.TimeString
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppliesTo reports whether the rule contributes slots on the given weekday.
// Inactive rules never apply.
func (r *AvailabilityRule) AppliesTo(weekday time.Weekday) bool {
	return r.IsActive && r.DayOfWeek == int(weekday)
}

// Validate checks the rule's fields are internally consistent.
func (r *AvailabilityRule) Validate() error {
	if r.DayOfWeek < 0 || r.DayOfWeek > 6 {
		return fmt.Errorf("day of week %d out of range 0-6", r.DayOfWeek)
	}
	if err := r.StartTime.Validate(); err != nil {
		return fmt.Errorf("start time: %w", err)
	}
	if err := r.EndTime.Validate(); err != nil {
		return fmt.Errorf("end time: %w", err)
	}
	if !r.StartTime.IsBefore(r.EndTime) {
		return fmt.Errorf("start time %s must be before end time %s", r.StartTime, r.EndTime)
	}
	return nil
}
