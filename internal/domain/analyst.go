package domain

import "time"

// Analyst is a research analyst visitors can book meetings with. Inactive
// analysts keep their history but no longer resolve to their own schedule.
type Analyst struct {
	ID        int64
	Name      string
	Title     string
	Coverage  *string // sector coverage, free text
	Email     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
