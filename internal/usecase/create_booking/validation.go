package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/domain"
)

func validateRequest(req *Request) error {
	if req.AnalystID != nil && *req.AnalystID <= 0 {
		return fmt.Errorf("%w: analystId must be positive, got %d", ErrInvalidInput, *req.AnalystID)
	}

	name := strings.TrimSpace(req.VisitorName)
	if name == "" {
		return fmt.Errorf("%w: visitor name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxVisitorNameLength {
		return fmt.Errorf("%w: visitor name exceeds %d characters", ErrInvalidInput, domain.MaxVisitorNameLength)
	}

	if err := validateEmail(req.VisitorEmail); err != nil {
		return err
	}

	if req.Topic != nil && len(*req.Topic) > domain.MaxTopicLength {
		return fmt.Errorf("%w: topic exceeds %d characters", ErrInvalidInput, domain.MaxTopicLength)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}

	if req.DurationMinutes != nil {
		d := *req.DurationMinutes
		if d < domain.MinMeetingDurationMinutes || d > domain.MaxMeetingDurationMinutes {
			return fmt.Errorf("%w: duration must be between %d and %d minutes",
				ErrInvalidInput, domain.MinMeetingDurationMinutes, domain.MaxMeetingDurationMinutes)
		}
	}

	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: visitor email is required", ErrInvalidInput)
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || !strings.Contains(email[at+1:], ".") {
		return fmt.Errorf("%w: visitor email is malformed", ErrInvalidInput)
	}
	return nil
}

// validateDate rejects days that are already over. Same-day bookings are
// allowed; slot-level staleness is not enforced here.
func validateDate(date, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, date.Location())
	if date.Before(today) {
		return fmt.Errorf("%w: date %s is in the past", ErrInvalidDate, date.Format(domain.DateFormat))
	}
	return nil
}
