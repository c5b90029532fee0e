package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/domain"
	"github.com/syednazrin/Amresearch-platform-sub000/pkg/types"
)

// monday is 2026-09-07, a Monday.
var monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func rule(t *testing.T, day int, start, end string, active bool) domain.AvailabilityRule {
	t.Helper()
	return domain.AvailabilityRule{
		DayOfWeek: day,
		StartTime: mustTime(t, start),
		EndTime:   mustTime(t, end),
		IsActive:  active,
	}
}

func booking(t *testing.T, start string, status domain.BookingStatus) *domain.Booking {
	t.Helper()
	return &domain.Booking{
		BookingDate: monday,
		StartTime:   mustTime(t, start),
		Status:      status,
	}
}

func slotStrings(slots []types.TimeString) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.String())
	}
	return out
}

func TestResolveAvailableSlots_NoRules(t *testing.T) {
	slots, err := resolveAvailableSlots(monday, nil, nil, 15)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestResolveAvailableSlots_SingleWindow(t *testing.T) {
	rules := []domain.AvailabilityRule{
		rule(t, 1, "09:00", "10:00", true),
	}

	slots, err := resolveAvailableSlots(monday, rules, nil, 15)

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:15", "09:30", "09:45"}, slotStrings(slots))
}

func TestResolveAvailableSlots_BookingExcludesSlot(t *testing.T) {
	rules := []domain.AvailabilityRule{
		rule(t, 1, "09:00", "10:00", true),
	}
	bookings := []*domain.Booking{
		booking(t, "09:30", domain.StatusConfirmed),
	}

	slots, err := resolveAvailableSlots(monday, rules, bookings, 15)

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:15", "09:45"}, slotStrings(slots))
}

func TestResolveAvailableSlots_CancelledBookingDoesNotBlock(t *testing.T) {
	rules := []domain.AvailabilityRule{
		rule(t, 1, "09:00", "10:00", true),
	}
	bookings := []*domain.Booking{
		booking(t, "09:30", domain.StatusCancelled),
	}

	slots, err := resolveAvailableSlots(monday, rules, bookings, 15)

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:15", "09:30", "09:45"}, slotStrings(slots))
}

func TestResolveAvailableSlots_PendingBookingBlocks(t *testing.T) {
	rules := []domain.AvailabilityRule{
		rule(t, 1, "09:00", "09:30", true),
	}
	bookings := []*domain.Booking{
		booking(t, "09:00", domain.StatusPending),
	}

	slots, err := resolveAvailableSlots(monday, rules, bookings, 15)

	require.NoError(t, err)
	assert.Equal(t, []string{"09:15"}, slotStrings(slots))
}

func TestResolveAvailableSlots_MultipleWindowsSortedUnion(t *testing.T) {
	// Windows deliberately out of order to exercise the final sort.
	rules := []domain.AvailabilityRule{
		rule(t, 1, "14:00", "14:30", true),
		rule(t, 1, "09:00", "10:00", true),
	}

	slots, err := resolveAvailableSlots(monday, rules, nil, 15)

	require.NoError(t, err)
	assert.Equal(t,
		[]string{"09:00", "09:15", "09:30", "09:45", "14:00", "14:15"},
		slotStrings(slots))
}

func TestResolveAvailableSlots_OverlappingWindowsDeduplicated(t *testing.T) {
	rules := []domain.AvailabilityRule{
		rule(t, 1, "09:00", "10:00", true),
		rule(t, 1, "09:30", "10:30", true),
	}

	slots, err := resolveAvailableSlots(monday, rules, nil, 15)

	require.NoError(t, err)
	assert.Equal(t,
		[]string{"09:00", "09:15", "09:30", "09:45", "10:00", "10:15"},
		slotStrings(slots))
}

func TestResolveAvailableSlots_TruncatedFinalSlot(t *testing.T) {
	// 09:00-09:50 yields 09:45 even though only 5 minutes remain after it.
	rules := []domain.AvailabilityRule{
		rule(t, 1, "09:00", "09:50", true),
	}

	slots, err := resolveAvailableSlots(monday, rules, nil, 15)

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:15", "09:30", "09:45"}, slotStrings(slots))
}

func TestResolveAvailableSlots_InactiveRuleIgnored(t *testing.T) {
	rules := []domain.AvailabilityRule{
		rule(t, 1, "09:00", "10:00", false),
	}

	slots, err := resolveAvailableSlots(monday, rules, nil, 15)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestResolveAvailableSlots_OtherWeekdayIgnored(t *testing.T) {
	rules := []domain.AvailabilityRule{
		rule(t, 2, "09:00", "10:00", true), // Tuesday rule, Monday request
	}

	slots, err := resolveAvailableSlots(monday, rules, nil, 15)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestResolveAvailableSlots_OffGridBookingHasNoEffect(t *testing.T) {
	rules := []domain.AvailabilityRule{
		rule(t, 1, "09:00", "10:00", true),
	}
	bookings := []*domain.Booking{
		booking(t, "09:10", domain.StatusConfirmed), // between steps
		booking(t, "13:00", domain.StatusConfirmed), // outside any window
	}

	slots, err := resolveAvailableSlots(monday, rules, bookings, 15)

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:15", "09:30", "09:45"}, slotStrings(slots))
}

func TestResolveAvailableSlots_DurationDoesNotWidenExclusion(t *testing.T) {
	rules := []domain.AvailabilityRule{
		rule(t, 1, "09:00", "10:00", true),
	}
	long := booking(t, "09:00", domain.StatusConfirmed)
	long.DurationMinutes = 60

	slots, err := resolveAvailableSlots(monday, rules, []*domain.Booking{long}, 15)

	require.NoError(t, err)
	// Only the exact start slot is taken; the meeting's length is advisory.
	assert.Equal(t, []string{"09:15", "09:30", "09:45"}, slotStrings(slots))
}

func TestResolveAvailableSlots_Idempotent(t *testing.T) {
	rules := []domain.AvailabilityRule{
		rule(t, 1, "09:00", "10:00", true),
		rule(t, 1, "14:00", "15:00", true),
	}
	bookings := []*domain.Booking{
		booking(t, "09:15", domain.StatusConfirmed),
		booking(t, "14:30", domain.StatusPending),
	}

	first, err := resolveAvailableSlots(monday, rules, bookings, 15)
	require.NoError(t, err)
	second, err := resolveAvailableSlots(monday, rules, bookings, 15)
	require.NoError(t, err)

	assert.Equal(t, slotStrings(first), slotStrings(second))
}

func TestResolveAvailableSlots_InvalidRule(t *testing.T) {
	rules := []domain.AvailabilityRule{
		rule(t, 1, "10:00", "09:00", true), // start after end
	}

	_, err := resolveAvailableSlots(monday, rules, nil, 15)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRule)
}

func TestResolveAvailableSlots_InvalidGranularity(t *testing.T) {
	_, err := resolveAvailableSlots(monday, nil, nil, 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestResolveAvailableSlots_ZeroDate(t *testing.T) {
	_, err := resolveAvailableSlots(time.Time{}, nil, nil, 15)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
