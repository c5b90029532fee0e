package get_available_slots

import "fmt"

func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.AnalystID != nil && *req.AnalystID <= 0 {
		return fmt.Errorf("%w: analystId must be positive, got %d", ErrInvalidInput, *req.AnalystID)
	}
	return nil
}
