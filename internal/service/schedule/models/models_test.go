package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syednazrin/Amresearch-platform-sub000/pkg/ptr"
)

func TestCreateRuleRequest_ToDomain(t *testing.T) {
	req := &CreateRuleRequest{
		AnalystID: ptr.Ptr(int64(7)),
		DayOfWeek: 1,
		StartTime: "09:00",
		EndTime:   "17:00",
	}

	rule, err := req.ToDomain()

	require.NoError(t, err)
	assert.True(t, rule.IsActive) // defaults to active
	assert.Equal(t, 1, rule.DayOfWeek)
	assert.Equal(t, "09:00", rule.StartTime.String())
	assert.Equal(t, "17:00", rule.EndTime.String())
	id, ok := rule.Scope.AnalystID()
	require.True(t, ok)
	assert.Equal(t, int64(7), id)
}

func TestCreateRuleRequest_ToDomain_Invalid(t *testing.T) {
	cases := map[string]*CreateRuleRequest{
		"bad start":       {DayOfWeek: 1, StartTime: "nine", EndTime: "17:00"},
		"bad end":         {DayOfWeek: 1, StartTime: "09:00", EndTime: "25:00"},
		"inverted window": {DayOfWeek: 1, StartTime: "17:00", EndTime: "09:00"},
		"empty window":    {DayOfWeek: 1, StartTime: "09:00", EndTime: "09:00"},
		"bad weekday":     {DayOfWeek: 7, StartTime: "09:00", EndTime: "17:00"},
	}

	for name, req := range cases {
		_, err := req.ToDomain()
		assert.Error(t, err, name)
	}
}

func TestUpdateRuleRequest_ApplyTo(t *testing.T) {
	base := &CreateRuleRequest{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"}
	rule, err := base.ToDomain()
	require.NoError(t, err)

	patch := &UpdateRuleRequest{
		EndTime:  ptr.Ptr("12:00"),
		IsActive: ptr.Ptr(false),
	}
	require.NoError(t, patch.ApplyTo(rule))

	assert.Equal(t, "09:00", rule.StartTime.String())
	assert.Equal(t, "12:00", rule.EndTime.String())
	assert.False(t, rule.IsActive)

	// A patch that inverts the window is rejected.
	bad := &UpdateRuleRequest{EndTime: ptr.Ptr("08:00")}
	assert.Error(t, bad.ApplyTo(rule))
}
