package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/domain"
	bookingRepo "github.com/syednazrin/Amresearch-platform-sub000/internal/infra/storage/booking"
	"github.com/syednazrin/Amresearch-platform-sub000/internal/service/bookings/models"
	"github.com/syednazrin/Amresearch-platform-sub000/pkg/ptr"
	"github.com/syednazrin/Amresearch-platform-sub000/pkg/types"
)

type stubBookingRepo struct {
	bookings   map[int64]*domain.Booking
	lastFilter domain.BookingsFilter
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{bookings: map[int64]*domain.Booking{}}
}

func (s *stubBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (s *stubBookingRepo) ListWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	s.lastFilter = filter
	out := make([]*domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (s *stubBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := s.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (s *stubBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	b, ok := s.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	now := time.Now()
	b.Status = domain.StatusCancelled
	b.CancellationReason = &reason
	b.CancelledAt = &now
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func seedBooking(t *testing.T, repo *stubBookingRepo, id int64, status domain.BookingStatus) {
	t.Helper()
	start, err := types.NewTimeStringFromString("09:15")
	require.NoError(t, err)
	repo.bookings[id] = &domain.Booking{
		ID:              id,
		VisitorName:     "Jordan Blake",
		VisitorEmail:    "jordan.blake@example.com",
		BookingDate:     time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartTime:       start,
		DurationMinutes: 15,
		Status:          status,
	}
}

func TestGetByID(t *testing.T) {
	repo := newStubBookingRepo()
	seedBooking(t, repo, 1, domain.StatusPending)
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2026-09-07", resp.BookingDate)
	assert.Equal(t, "09:15", resp.StartTime)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_ScopeFilter(t *testing.T) {
	repo := newStubBookingRepo()
	seedBooking(t, repo, 1, domain.StatusPending)
	svc := NewService(repo, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{
		AnalystID: ptr.Ptr(int64(7)),
	})
	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.Scope)
	id, ok := repo.lastFilter.Scope.AnalystID()
	require.True(t, ok)
	assert.Equal(t, int64(7), id)

	_, err = svc.List(context.Background(), &models.ListBookingsRequest{GlobalOnly: true})
	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.Scope)
	assert.True(t, repo.lastFilter.Scope.IsGlobal())

	_, err = svc.List(context.Background(), &models.ListBookingsRequest{})
	require.NoError(t, err)
	assert.Nil(t, repo.lastFilter.Scope)
}

func TestList_InvalidStatus(t *testing.T) {
	svc := NewService(newStubBookingRepo(), nopLogger{})

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Status: ptr.Ptr("done"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel(t *testing.T) {
	repo := newStubBookingRepo()
	seedBooking(t, repo, 1, domain.StatusConfirmed)
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		CancellationReason: "visitor asked to reschedule",
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	require.NotNil(t, resp.CancellationReason)
	assert.Equal(t, "visitor asked to reschedule", *resp.CancellationReason)
	assert.NotNil(t, resp.CancelledAt)
}

func TestCancel_Validation(t *testing.T) {
	repo := newStubBookingRepo()
	seedBooking(t, repo, 1, domain.StatusCancelled)
	svc := NewService(repo, nopLogger{})

	_, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{CancellationReason: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{CancellationReason: "too late"})
	assert.ErrorIs(t, err, ErrCannotCancel)

	_, err = svc.Cancel(context.Background(), 99, &models.CancelBookingRequest{CancellationReason: "gone"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatus(t *testing.T) {
	repo := newStubBookingRepo()
	seedBooking(t, repo, 1, domain.StatusPending)
	svc := NewService(repo, nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestUpdateStatus_Rejections(t *testing.T) {
	repo := newStubBookingRepo()
	seedBooking(t, repo, 1, domain.StatusPending)
	seedBooking(t, repo, 2, domain.StatusCancelled)
	svc := NewService(repo, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "done"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	// Cancellation must go through Cancel so the reason is recorded.
	_, err = svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "cancelled"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(context.Background(), 2, &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(context.Background(), 99, &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
