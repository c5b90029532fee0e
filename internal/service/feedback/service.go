package feedback

import (
	"context"
	"fmt"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/service/feedback/models"
)

// Service handles reader feedback on the portal.
type Service struct {
	feedbackRepo FeedbackRepository
	logger       Logger
}

// NewService creates a new feedback service instance.
func NewService(feedbackRepo FeedbackRepository, logger Logger) *Service {
	return &Service{
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

// Create stores a reader's note.
func (s *Service) Create(ctx context.Context, req *models.CreateFeedbackRequest) (*models.FeedbackResponse, error) {
	s.logger.Info("Create: new feedback from %s, rating=%d", req.Email, req.Rating)

	fb, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: invalid feedback: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.feedbackRepo.Create(ctx, fb)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: feedback id=%d stored", created.ID)
	return models.FromDomainFeedback(created), nil
}

// List fetches all feedback, newest first.
func (s *Service) List(ctx context.Context) (*models.FeedbackListResponse, error) {
	items, err := s.feedbackRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainFeedbackList(items), nil
}
