package domain

import "time"

// Feedback is a reader-submitted note on the portal content.
type Feedback struct {
	ID        int64
	Name      string
	Email     string
	Message   string
	Rating    int // 1-5
	CreatedAt time.Time
}
