package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/domain"
	analystRepo "github.com/syednazrin/Amresearch-platform-sub000/internal/infra/storage/analyst"
	"github.com/syednazrin/Amresearch-platform-sub000/pkg/ptr"
)

type stubScheduleRepo struct {
	rulesByScope map[string][]domain.AvailabilityRule
}

func (s *stubScheduleRepo) ListByScope(_ context.Context, scope domain.Scope) ([]domain.AvailabilityRule, error) {
	return s.rulesByScope[scope.String()], nil
}

type stubBookingRepo struct {
	bookingsByScope map[string][]*domain.Booking
	lastFilter      domain.BookingsFilter
}

func (s *stubBookingRepo) ListWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	s.lastFilter = filter
	if filter.Scope == nil {
		return nil, nil
	}
	return s.bookingsByScope[filter.Scope.String()], nil
}

type stubAnalystRepo struct {
	analysts map[int64]*domain.Analyst
}

func (s *stubAnalystRepo) GetByID(_ context.Context, id int64) (*domain.Analyst, error) {
	a, ok := s.analysts[id]
	if !ok {
		return nil, analystRepo.ErrAnalystNotFound
	}
	return a, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(t *testing.T) (*UseCase, *stubScheduleRepo, *stubBookingRepo, *stubAnalystRepo) {
	t.Helper()
	schedules := &stubScheduleRepo{rulesByScope: map[string][]domain.AvailabilityRule{}}
	bookings := &stubBookingRepo{bookingsByScope: map[string][]*domain.Booking{}}
	analysts := &stubAnalystRepo{analysts: map[int64]*domain.Analyst{}}
	return NewUseCase(schedules, bookings, analysts, nopLogger{}), schedules, bookings, analysts
}

func TestExecute_GlobalScope(t *testing.T) {
	uc, schedules, _, _ := newTestUseCase(t)
	schedules.rulesByScope["global"] = []domain.AvailabilityRule{
		rule(t, 1, "09:00", "10:00", true),
	}

	resp, err := uc.Execute(context.Background(), &Request{Date: monday})

	require.NoError(t, err)
	assert.True(t, resp.Scope.IsGlobal())
	assert.Equal(t, []string{"09:00", "09:15", "09:30", "09:45"}, slotStrings(resp.Slots))
}

func TestExecute_AnalystScopeIsolated(t *testing.T) {
	uc, schedules, bookingRepo, analysts := newTestUseCase(t)
	analysts.analysts[7] = &domain.Analyst{ID: 7, Name: "Dana Reyes", IsActive: true}
	schedules.rulesByScope["analyst:7"] = []domain.AvailabilityRule{
		rule(t, 1, "09:00", "09:30", true),
	}
	// A global booking at the same time must not shadow the analyst's slot.
	bookingRepo.bookingsByScope["global"] = []*domain.Booking{
		booking(t, "09:00", domain.StatusConfirmed),
	}

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, AnalystID: ptr.Ptr(int64(7))})

	require.NoError(t, err)
	id, ok := resp.Scope.AnalystID()
	require.True(t, ok)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, []string{"09:00", "09:15"}, slotStrings(resp.Slots))
}

func TestExecute_UnknownAnalystFallsBackToGlobal(t *testing.T) {
	uc, schedules, _, _ := newTestUseCase(t)
	schedules.rulesByScope["global"] = []domain.AvailabilityRule{
		rule(t, 1, "14:00", "14:30", true),
	}

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, AnalystID: ptr.Ptr(int64(99))})

	require.NoError(t, err)
	assert.True(t, resp.Scope.IsGlobal())
	assert.Equal(t, []string{"14:00", "14:15"}, slotStrings(resp.Slots))
}

func TestExecute_InactiveAnalystFallsBackToGlobal(t *testing.T) {
	uc, schedules, _, analysts := newTestUseCase(t)
	analysts.analysts[3] = &domain.Analyst{ID: 3, Name: "Kim Osei", IsActive: false}
	schedules.rulesByScope["analyst:3"] = []domain.AvailabilityRule{
		rule(t, 1, "09:00", "10:00", true),
	}
	schedules.rulesByScope["global"] = []domain.AvailabilityRule{
		rule(t, 1, "14:00", "14:30", true),
	}

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, AnalystID: ptr.Ptr(int64(3))})

	require.NoError(t, err)
	assert.True(t, resp.Scope.IsGlobal())
	assert.Equal(t, []string{"14:00", "14:15"}, slotStrings(resp.Slots))
}

func TestExecute_CancelledBookingsFetchedAndIgnored(t *testing.T) {
	uc, schedules, bookingRepo, _ := newTestUseCase(t)
	schedules.rulesByScope["global"] = []domain.AvailabilityRule{
		rule(t, 1, "09:00", "09:30", true),
	}
	bookingRepo.bookingsByScope["global"] = []*domain.Booking{
		booking(t, "09:00", domain.StatusCancelled),
	}

	resp, err := uc.Execute(context.Background(), &Request{Date: monday})

	require.NoError(t, err)
	assert.True(t, bookingRepo.lastFilter.IncludeCancelled)
	require.NotNil(t, bookingRepo.lastFilter.StartDate)
	assert.Equal(t, monday, *bookingRepo.lastFilter.StartDate)
	assert.Equal(t, []string{"09:00", "09:15"}, slotStrings(resp.Slots))
}

func TestExecute_InvalidRequest(t *testing.T) {
	uc, _, _, _ := newTestUseCase(t)

	_, err := uc.Execute(context.Background(), &Request{Date: time.Time{}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: monday, AnalystID: ptr.Ptr(int64(-1))})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
