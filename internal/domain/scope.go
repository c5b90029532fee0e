package domain

import "fmt"

// Scope identifies the owner of a set of availability rules and bookings:
// either one analyst or the firm-wide global schedule. The two sources are
// mutually exclusive for any given request, so the variant is encoded here
// instead of scattering nil checks through the call sites.
type Scope struct {
	analystID *int64
}

// GlobalScope is the firm-wide schedule.
func GlobalScope() Scope {
	return Scope{}
}

// AnalystScope is the schedule of a single analyst.
func AnalystScope(analystID int64) Scope {
	return Scope{analystID: &analystID}
}

// ScopeFromAnalystID maps an optional analyst reference to a Scope.
func ScopeFromAnalystID(analystID *int64) Scope {
	if analystID == nil {
		return GlobalScope()
	}
	return AnalystScope(*analystID)
}

// IsGlobal reports whether this is the firm-wide schedule.
func (s Scope) IsGlobal() bool {
	return s.analystID == nil
}

// AnalystID returns the analyst identifier and whether one is set.
func (s Scope) AnalystID() (int64, bool) {
	if s.analystID == nil {
		return 0, false
	}
	return *s.analystID, true
}

// AnalystRef returns the analyst id in the nullable form persisted storage
// expects (nil for the global schedule).
func (s Scope) AnalystRef() *int64 {
	if s.analystID == nil {
		return nil
	}
	id := *s.analystID
	return &id
}

// String renders the scope for log lines.
func (s Scope) String() string {
	if s.analystID == nil {
		return "global"
	}
	return fmt.Sprintf("analyst:%d", *s.analystID)
}
