package models

import (
	"fmt"
	"time"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/domain"
	"github.com/syednazrin/Amresearch-platform-sub000/pkg/types"
)

// Request models

// CreateRuleRequest defines a new weekly availability window. A nil
// AnalystID creates a rule on the firm-wide global schedule.
type CreateRuleRequest struct {
	AnalystID *int64 `json:"analystId,omitempty"`
	DayOfWeek int    `json:"dayOfWeek"` // 0 = Sunday
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "17:00"
	IsActive  *bool  `json:"isActive,omitempty"`
}

// ToDomain converts the request into a domain rule.
func (r *CreateRuleRequest) ToDomain() (*domain.AvailabilityRule, error) {
	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("start time: %w", err)
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("end time: %w", err)
	}

	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}

	rule := &domain.AvailabilityRule{
		Scope:     domain.ScopeFromAnalystID(r.AnalystID),
		DayOfWeek: r.DayOfWeek,
		StartTime: start,
		EndTime:   end,
		IsActive:  active,
	}

	if err := rule.Validate(); err != nil {
		return nil, err
	}
	return rule, nil
}

// UpdateRuleRequest patches an existing rule. Only set fields change; the
// owning scope is immutable.
type UpdateRuleRequest struct {
	DayOfWeek *int    `json:"dayOfWeek,omitempty"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

// ApplyTo merges the patch into an existing rule and revalidates it.
func (r *UpdateRuleRequest) ApplyTo(rule *domain.AvailabilityRule) error {
	if r.DayOfWeek != nil {
		rule.DayOfWeek = *r.DayOfWeek
	}
	if r.StartTime != nil {
		start, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return fmt.Errorf("start time: %w", err)
		}
		rule.StartTime = start
	}
	if r.EndTime != nil {
		end, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return fmt.Errorf("end time: %w", err)
		}
		rule.EndTime = end
	}
	if r.IsActive != nil {
		rule.IsActive = *r.IsActive
	}
	return rule.Validate()
}

// Response models

// RuleResponse is the availability rule DTO.
type RuleResponse struct {
	ID        int64  `json:"id"`
	AnalystID *int64 `json:"analystId,omitempty"`
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsActive  bool   `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RuleListResponse is the rule list DTO.
type RuleListResponse struct {
	Rules []RuleResponse `json:"rules"`
}

// Converters

// FromDomainRule converts the domain model into the DTO.
func FromDomainRule(rule *domain.AvailabilityRule) *RuleResponse {
	if rule == nil {
		return nil
	}
	return &RuleResponse{
		ID:        rule.ID,
		AnalystID: rule.Scope.AnalystRef(),
		DayOfWeek: rule.DayOfWeek,
		StartTime: rule.StartTime.String(),
		EndTime:   rule.EndTime.String(),
		IsActive:  rule.IsActive,
		CreatedAt: rule.CreatedAt,
		UpdatedAt: rule.UpdatedAt,
	}
}

// FromDomainRuleList converts a domain slice into the list DTO.
func FromDomainRuleList(rules []domain.AvailabilityRule) *RuleListResponse {
	resp := &RuleListResponse{
		Rules: make([]RuleResponse, 0, len(rules)),
	}
	for i := range rules {
		resp.Rules = append(resp.Rules, *FromDomainRule(&rules[i]))
	}
	return resp
}
