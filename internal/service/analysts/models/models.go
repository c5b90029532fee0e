package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/domain"
)

// Request models

// CreateAnalystRequest registers a new analyst on the portal.
type CreateAnalystRequest struct {
	Name     string  `json:"name"`
	Title    string  `json:"title"`
	Coverage *string `json:"coverage,omitempty"`
	Email    string  `json:"email"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// ToDomain converts the request into a domain analyst.
func (r *CreateAnalystRequest) ToDomain() (*domain.Analyst, error) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	email := strings.TrimSpace(r.Email)
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}

	return &domain.Analyst{
		Name:     name,
		Title:    strings.TrimSpace(r.Title),
		Coverage: r.Coverage,
		Email:    email,
		IsActive: active,
	}, nil
}

// UpdateAnalystRequest patches an existing analyst. Only set fields change.
type UpdateAnalystRequest struct {
	Name     *string `json:"name,omitempty"`
	Title    *string `json:"title,omitempty"`
	Coverage *string `json:"coverage,omitempty"`
	Email    *string `json:"email,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// ApplyTo merges the patch into an existing analyst.
func (r *UpdateAnalystRequest) ApplyTo(a *domain.Analyst) error {
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if name == "" {
			return fmt.Errorf("name cannot be empty")
		}
		a.Name = name
	}
	if r.Title != nil {
		a.Title = strings.TrimSpace(*r.Title)
	}
	if r.Coverage != nil {
		a.Coverage = r.Coverage
	}
	if r.Email != nil {
		email := strings.TrimSpace(*r.Email)
		if email == "" {
			return fmt.Errorf("email cannot be empty")
		}
		a.Email = email
	}
	if r.IsActive != nil {
		a.IsActive = *r.IsActive
	}
	return nil
}

// Response models

// AnalystResponse is the analyst DTO.
type AnalystResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Title    string  `json:"title"`
	Coverage *string `json:"coverage,omitempty"`
	Email    string  `json:"email"`
	IsActive bool    `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AnalystListResponse is the analyst list DTO.
type AnalystListResponse struct {
	Analysts []AnalystResponse `json:"analysts"`
}

// Converters

// FromDomainAnalyst converts the domain model into the DTO.
func FromDomainAnalyst(a *domain.Analyst) *AnalystResponse {
	if a == nil {
		return nil
	}
	return &AnalystResponse{
		ID:        a.ID,
		Name:      a.Name,
		Title:     a.Title,
		Coverage:  a.Coverage,
		Email:     a.Email,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// FromDomainAnalystList converts a domain slice into the list DTO.
func FromDomainAnalystList(analysts []*domain.Analyst) *AnalystListResponse {
	resp := &AnalystListResponse{
		Analysts: make([]AnalystResponse, 0, len(analysts)),
	}
	for _, a := range analysts {
		resp.Analysts = append(resp.Analysts, *FromDomainAnalyst(a))
	}
	return resp
}
