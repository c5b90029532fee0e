package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/domain"
	analystRepo "github.com/syednazrin/Amresearch-platform-sub000/internal/infra/storage/analyst"
	bookingRepo "github.com/syednazrin/Amresearch-platform-sub000/internal/infra/storage/booking"
	"github.com/syednazrin/Amresearch-platform-sub000/pkg/ptr"
	"github.com/syednazrin/Amresearch-platform-sub000/pkg/types"
)

// monday is 2026-09-07, a Monday; "now" in tests is the preceding Friday.
var (
	monday  = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	testNow = time.Date(2026, 9, 4, 12, 0, 0, 0, time.UTC)
)

type fixedTimeProvider struct{ now time.Time }

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubScheduleRepo struct {
	rulesByScope map[string][]domain.AvailabilityRule
}

func (s *stubScheduleRepo) ListByScope(_ context.Context, scope domain.Scope) ([]domain.AvailabilityRule, error) {
	return s.rulesByScope[scope.String()], nil
}

type stubBookingRepo struct {
	bookingsByScope map[string][]*domain.Booking
	createErr       error
	created         *domain.Booking
}

func (s *stubBookingRepo) ListWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	if filter.Scope == nil {
		return nil, nil
	}
	return s.bookingsByScope[filter.Scope.String()], nil
}

func (s *stubBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	created := *b
	created.ID = 42
	s.created = &created
	return &created, nil
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

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func mondayRule(t *testing.T, start, end string) domain.AvailabilityRule {
	t.Helper()
	return domain.AvailabilityRule{
		DayOfWeek: 1,
		StartTime: mustTime(t, start),
		EndTime:   mustTime(t, end),
		IsActive:  true,
	}
}

func newTestUseCase(t *testing.T) (*UseCase, *stubScheduleRepo, *stubBookingRepo, *stubAnalystRepo) {
	t.Helper()
	schedules := &stubScheduleRepo{rulesByScope: map[string][]domain.AvailabilityRule{}}
	bookings := &stubBookingRepo{bookingsByScope: map[string][]*domain.Booking{}}
	analysts := &stubAnalystRepo{analysts: map[int64]*domain.Analyst{}}
	uc := NewUseCase(bookings, schedules, analysts, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc, schedules, bookings, analysts
}

func validRequest(t *testing.T) *Request {
	t.Helper()
	return &Request{
		VisitorName:  "Jordan Blake",
		VisitorEmail: "jordan.blake@example.com",
		Date:         monday,
		StartTime:    mustTime(t, "09:15"),
	}
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	uc, schedules, bookings, _ := newTestUseCase(t)
	schedules.rulesByScope["global"] = []domain.AvailabilityRule{mondayRule(t, "09:00", "10:00")}

	resp, err := uc.Execute(context.Background(), validRequest(t))

	require.NoError(t, err)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, int64(42), resp.Booking.ID)
	assert.Equal(t, domain.StatusPending, resp.Booking.Status)
	assert.Equal(t, domain.DefaultMeetingDurationMinutes, resp.Booking.DurationMinutes)
	assert.Nil(t, bookings.created.AnalystID)
}

func TestExecute_AnalystScope(t *testing.T) {
	uc, schedules, bookings, analysts := newTestUseCase(t)
	analysts.analysts[7] = &domain.Analyst{ID: 7, Name: "Dana Reyes", IsActive: true}
	schedules.rulesByScope["analyst:7"] = []domain.AvailabilityRule{mondayRule(t, "09:00", "10:00")}

	req := validRequest(t)
	req.AnalystID = ptr.Ptr(int64(7))
	req.DurationMinutes = ptr.Ptr(60)

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, bookings.created.AnalystID)
	assert.Equal(t, int64(7), *bookings.created.AnalystID)
	assert.Equal(t, 60, resp.Booking.DurationMinutes)
}

func TestExecute_AnalystNotFound(t *testing.T) {
	uc, _, _, _ := newTestUseCase(t)

	req := validRequest(t)
	req.AnalystID = ptr.Ptr(int64(99))

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrAnalystNotFound)
}

func TestExecute_AnalystInactive(t *testing.T) {
	uc, _, _, analysts := newTestUseCase(t)
	analysts.analysts[3] = &domain.Analyst{ID: 3, Name: "Kim Osei", IsActive: false}

	req := validRequest(t)
	req.AnalystID = ptr.Ptr(int64(3))

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrAnalystInactive)
}

func TestExecute_PastDateRejected(t *testing.T) {
	uc, schedules, _, _ := newTestUseCase(t)
	schedules.rulesByScope["global"] = []domain.AvailabilityRule{mondayRule(t, "09:00", "10:00")}

	req := validRequest(t)
	req.Date = testNow.AddDate(0, 0, -7)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_OffGridTimeRejected(t *testing.T) {
	uc, schedules, _, _ := newTestUseCase(t)
	schedules.rulesByScope["global"] = []domain.AvailabilityRule{mondayRule(t, "09:00", "10:00")}

	for _, start := range []string{"09:10", "13:00", "10:00"} {
		req := validRequest(t)
		req.StartTime = mustTime(t, start)

		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrInvalidTimeSlot, "start=%s", start)
	}
}

func TestExecute_SlotAlreadyTaken(t *testing.T) {
	uc, schedules, bookings, _ := newTestUseCase(t)
	schedules.rulesByScope["global"] = []domain.AvailabilityRule{mondayRule(t, "09:00", "10:00")}
	bookings.bookingsByScope["global"] = []*domain.Booking{
		{BookingDate: monday, StartTime: mustTime(t, "09:15"), Status: domain.StatusConfirmed},
	}

	_, err := uc.Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	uc, schedules, bookings, _ := newTestUseCase(t)
	schedules.rulesByScope["global"] = []domain.AvailabilityRule{mondayRule(t, "09:00", "10:00")}
	bookings.bookingsByScope["global"] = []*domain.Booking{
		{BookingDate: monday, StartTime: mustTime(t, "09:15"), Status: domain.StatusCancelled},
	}

	resp, err := uc.Execute(context.Background(), validRequest(t))

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, resp.Booking.Status)
}

func TestExecute_UniqueIndexRace(t *testing.T) {
	uc, schedules, bookings, _ := newTestUseCase(t)
	schedules.rulesByScope["global"] = []domain.AvailabilityRule{mondayRule(t, "09:00", "10:00")}
	bookings.createErr = bookingRepo.ErrSlotTaken

	_, err := uc.Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc, _, _, _ := newTestUseCase(t)

	cases := map[string]func(*Request){
		"empty name":     func(r *Request) { r.VisitorName = "  " },
		"empty email":    func(r *Request) { r.VisitorEmail = "" },
		"bad email":      func(r *Request) { r.VisitorEmail = "not-an-email" },
		"zero date":      func(r *Request) { r.Date = time.Time{} },
		"short duration": func(r *Request) { r.DurationMinutes = ptr.Ptr(5) },
		"long duration":  func(r *Request) { r.DurationMinutes = ptr.Ptr(500) },
	}

	for name, mutate := range cases {
		req := validRequest(t)
		mutate(req)

		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrInvalidInput, name)
	}
}
