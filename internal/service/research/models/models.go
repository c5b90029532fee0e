package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/domain"
)

// Request models

// CreateDocumentRequest registers a research note. FileURL points at the
// already uploaded file; upload mechanics are outside this service.
type CreateDocumentRequest struct {
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Summary     *string `json:"summary,omitempty"`
	FileURL     string  `json:"fileUrl"`
	IsPublished *bool   `json:"isPublished,omitempty"`
}

// ToDomain converts the request into a domain document.
func (r *CreateDocumentRequest) ToDomain() (*domain.ResearchDocument, error) {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	fileURL := strings.TrimSpace(r.FileURL)
	if fileURL == "" {
		return nil, fmt.Errorf("file url is required")
	}

	published := true
	if r.IsPublished != nil {
		published = *r.IsPublished
	}

	return &domain.ResearchDocument{
		Title:       title,
		Category:    strings.TrimSpace(r.Category),
		Summary:     r.Summary,
		FileURL:     fileURL,
		IsPublished: published,
	}, nil
}

// Response models

// DocumentResponse is the research document DTO.
type DocumentResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Summary     *string `json:"summary,omitempty"`
	FileURL     string  `json:"fileUrl"`
	IsPublished bool    `json:"isPublished"`
	PublishedAt *string `json:"publishedAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DocumentListResponse is the document list DTO.
type DocumentListResponse struct {
	Documents []DocumentResponse `json:"documents"`
}

// Converters

// FromDomainDocument converts the domain model into the DTO.
func FromDomainDocument(d *domain.ResearchDocument) *DocumentResponse {
	if d == nil {
		return nil
	}

	resp := &DocumentResponse{
		ID:          d.ID,
		Title:       d.Title,
		Category:    d.Category,
		Summary:     d.Summary,
		FileURL:     d.FileURL,
		IsPublished: d.IsPublished,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}

	if d.PublishedAt != nil {
		publishedAt := d.PublishedAt.Format(time.RFC3339)
		resp.PublishedAt = &publishedAt
	}

	return resp
}

// FromDomainDocumentList converts a domain slice into the list DTO.
func FromDomainDocumentList(docs []*domain.ResearchDocument) *DocumentListResponse {
	resp := &DocumentListResponse{
		Documents: make([]DocumentResponse, 0, len(docs)),
	}
	for _, d := range docs {
		resp.Documents = append(resp.Documents, *FromDomainDocument(d))
	}
	return resp
}
