package analysts

import (
	"context"
	"errors"
	"fmt"

	analystRepo "github.com/syednazrin/Amresearch-platform-sub000/internal/infra/storage/analyst"
	"github.com/syednazrin/Amresearch-platform-sub000/internal/service/analysts/models"
)

// Service manages the analyst roster. Deactivation replaces deletion so
// booking history keeps its references.
type Service struct {
	analystRepo AnalystRepository
	logger      Logger
}

// NewService creates a new analysts service instance.
func NewService(analystRepo AnalystRepository, logger Logger) *Service {
	return &Service{
		analystRepo: analystRepo,
		logger:      logger,
	}
}

// Create registers a new analyst.
func (s *Service) Create(ctx context.Context, req *models.CreateAnalystRequest) (*models.AnalystResponse, error) {
	s.logger.Info("Create: new analyst, name=%s", req.Name)

	analyst, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: invalid analyst: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.analystRepo.Create(ctx, analyst)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: analyst id=%d created", created.ID)
	return models.FromDomainAnalyst(created), nil
}

// GetByID fetches one analyst, active or not.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AnalystResponse, error) {
	analyst, err := s.analystRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, analystRepo.ErrAnalystNotFound) {
			s.logger.Warn("GetByID: analyst id=%d not found", id)
			return nil, ErrAnalystNotFound
		}
		s.logger.Error("GetByID: repository error for analyst id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainAnalyst(analyst), nil
}

// List fetches analysts. The public roster excludes inactive entries; the
// admin view passes includeInactive.
func (s *Service) List(ctx context.Context, includeInactive bool) (*models.AnalystListResponse, error) {
	analysts, err := s.analystRepo.List(ctx, includeInactive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainAnalystList(analysts), nil
}

// Update patches an analyst's profile or active flag.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateAnalystRequest) (*models.AnalystResponse, error) {
	s.logger.Info("Update: patching analyst id=%d", id)

	analyst, err := s.analystRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, analystRepo.ErrAnalystNotFound) {
			s.logger.Warn("Update: analyst id=%d not found", id)
			return nil, ErrAnalystNotFound
		}
		s.logger.Error("Update: repository error for analyst id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if err := req.ApplyTo(analyst); err != nil {
		s.logger.Warn("Update: invalid patch for analyst id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.analystRepo.Update(ctx, id, analyst)
	if err != nil {
		if errors.Is(err, analystRepo.ErrAnalystNotFound) {
			return nil, ErrAnalystNotFound
		}
		s.logger.Error("Update: repository error for analyst id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: analyst id=%d updated", id)
	return models.FromDomainAnalyst(updated), nil
}
