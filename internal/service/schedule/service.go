package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/domain"
	analystRepo "github.com/syednazrin/Amresearch-platform-sub000/internal/infra/storage/analyst"
	scheduleRepo "github.com/syednazrin/Amresearch-platform-sub000/internal/infra/storage/schedule"
	"github.com/syednazrin/Amresearch-platform-sub000/internal/service/schedule/models"
)

// Service administers weekly availability rules for the global schedule and
// per-analyst schedules.
type Service struct {
	scheduleRepo ScheduleRepository
	analystRepo  AnalystRepository
	logger       Logger
}

// NewService creates a new schedule service instance.
func NewService(scheduleRepo ScheduleRepository, analystRepo AnalystRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		analystRepo:  analystRepo,
		logger:       logger,
	}
}

// Create adds a new availability rule. An analyst-scoped rule requires the
// analyst to exist; inactive analysts may still receive rules, they just
// stop resolving until reactivated.
func (s *Service) Create(ctx context.Context, req *models.CreateRuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("Create: new rule, analyst=%v, day=%d, window=%s-%s",
		req.AnalystID, req.DayOfWeek, req.StartTime, req.EndTime)

	rule, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: invalid rule: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.AnalystID != nil {
		if _, err := s.analystRepo.GetByID(ctx, *req.AnalystID); err != nil {
			if errors.Is(err, analystRepo.ErrAnalystNotFound) {
				s.logger.Warn("Create: analyst id=%d not found", *req.AnalystID)
				return nil, ErrAnalystNotFound
			}
			s.logger.Error("Create: failed to get analyst id=%d: %v", *req.AnalystID, err)
			return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}
	}

	created, err := s.scheduleRepo.Create(ctx, rule)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: rule id=%d created for %s", created.ID, created.Scope)
	return models.FromDomainRule(created), nil
}

// GetByID fetches one rule.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RuleResponse, error) {
	rule, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrRuleNotFound) {
			s.logger.Warn("GetByID: rule id=%d not found", id)
			return nil, ErrRuleNotFound
		}
		s.logger.Error("GetByID: repository error for rule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainRule(rule), nil
}

// List fetches all rules for one scope, active and inactive, ordered by
// weekday and start time.
func (s *Service) List(ctx context.Context, analystID *int64) (*models.RuleListResponse, error) {
	scope := domain.ScopeFromAnalystID(analystID)
	s.logger.Info("List: fetching rules for %s", scope)

	rules, err := s.scheduleRepo.ListByScope(ctx, scope)
	if err != nil {
		s.logger.Error("List: repository error for %s: %v", scope, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRuleList(rules), nil
}

// Update patches a rule's window, weekday or active flag. The owning scope
// never changes; move a rule by deleting and recreating it.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateRuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("Update: patching rule id=%d", id)

	rule, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrRuleNotFound) {
			s.logger.Warn("Update: rule id=%d not found", id)
			return nil, ErrRuleNotFound
		}
		s.logger.Error("Update: repository error for rule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if err := req.ApplyTo(rule); err != nil {
		s.logger.Warn("Update: invalid patch for rule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.scheduleRepo.Update(ctx, id, rule)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrRuleNotFound) {
			return nil, ErrRuleNotFound
		}
		s.logger.Error("Update: repository error for rule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: rule id=%d updated", id)
	return models.FromDomainRule(updated), nil
}

// Delete removes a rule. Existing bookings are untouched; only future slot
// generation narrows.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: removing rule id=%d", id)

	if err := s.scheduleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, scheduleRepo.ErrRuleNotFound) {
			s.logger.Warn("Delete: rule id=%d not found", id)
			return ErrRuleNotFound
		}
		s.logger.Error("Delete: repository error for rule id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: rule id=%d removed", id)
	return nil
}
