package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/domain"
)

// Request models

// CreateFeedbackRequest submits a reader's note.
type CreateFeedbackRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Rating  int    `json:"rating"` // 1-5
}

// ToDomain converts the request into domain feedback.
func (r *CreateFeedbackRequest) ToDomain() (*domain.Feedback, error) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	message := strings.TrimSpace(r.Message)
	if message == "" {
		return nil, fmt.Errorf("message is required")
	}
	if len(message) > domain.MaxFeedbackMessageLength {
		return nil, fmt.Errorf("message exceeds %d characters", domain.MaxFeedbackMessageLength)
	}
	if r.Rating < 1 || r.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5, got %d", r.Rating)
	}

	return &domain.Feedback{
		Name:    name,
		Email:   strings.TrimSpace(r.Email),
		Message: message,
		Rating:  r.Rating,
	}, nil
}

// Response models

// FeedbackResponse is the feedback DTO.
type FeedbackResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

// FeedbackListResponse is the feedback list DTO.
type FeedbackListResponse struct {
	Feedback []FeedbackResponse `json:"feedback"`
}

// Converters

// FromDomainFeedback converts the domain model into the DTO.
func FromDomainFeedback(f *domain.Feedback) *FeedbackResponse {
	if f == nil {
		return nil
	}
	return &FeedbackResponse{
		ID:        f.ID,
		Name:      f.Name,
		Email:     f.Email,
		Message:   f.Message,
		Rating:    f.Rating,
		CreatedAt: f.CreatedAt,
	}
}

// FromDomainFeedbackList converts a domain slice into the list DTO.
func FromDomainFeedbackList(items []*domain.Feedback) *FeedbackListResponse {
	resp := &FeedbackListResponse{
		Feedback: make([]FeedbackResponse, 0, len(items)),
	}
	for _, f := range items {
		resp.Feedback = append(resp.Feedback, *FromDomainFeedback(f))
	}
	return resp
}
