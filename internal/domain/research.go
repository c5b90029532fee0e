package domain

import "time"

// ResearchDocument is a published research note on the portal. File upload
// mechanics live elsewhere; this record only carries the metadata and the
// storage URL.
type ResearchDocument struct {
	ID          int64
	Title       string
	Category    string
	Summary     *string
	FileURL     string
	IsPublished bool
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
