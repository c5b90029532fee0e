package domain

// SlotGranularityMinutes is the fixed step at which candidate slots are
// generated inside an availability window. The resolver takes it as a
// parameter for testability, but the service always passes this value.
const SlotGranularityMinutes = 15

// Meeting duration bounds. Duration is recorded on the booking but never
// widens the occupied slot.
const (
	DefaultMeetingDurationMinutes = 15
	MinMeetingDurationMinutes     = 15
	MaxMeetingDurationMinutes     = 240
)

// Field length limits for visitor-supplied text.
const (
	MaxVisitorNameLength        = 120
	MaxTopicLength              = 500
	MaxCancellationReasonLength = 500
	MaxFeedbackMessageLength    = 2000
)

// Time format constants.
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses lists the statuses that keep a booking occupying its slot.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
