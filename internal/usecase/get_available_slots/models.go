package get_available_slots

import (
	"time"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/domain"
	"github.com/syednazrin/Amresearch-platform-sub000/pkg/types"
)

// Request asks for the free slots on one calendar day. AnalystID selects that
// analyst's schedule; nil selects the firm-wide global schedule.
type Request struct {
	Date      time.Time
	AnalystID *int64
}

// Response carries the free slot start times, chronological. Scope reports
// which schedule actually answered: an unknown or inactive analyst falls
// back to the global schedule.
type Response struct {
	Date  time.Time
	Scope domain.Scope
	Slots []types.TimeString
}
