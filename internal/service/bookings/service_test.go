package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akimovv/VRM-BookingService/internal/domain"
	bookingRepo "github.com/akimovv/VRM-BookingService/internal/infra/storage/booking"
	"github.com/akimovv/VRM-BookingService/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	booking   *domain.Booking
	getErr    error
	cancelled bool
	reason    string
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	return f.booking, f.getErr
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, _ int64, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	return []*domain.Booking{f.booking}, nil
}

func (f *fakeBookingRepo) GetByPropertyWithFilter(_ context.Context, _ domain.PropertyBookingsFilter) ([]*domain.Booking, error) {
	return []*domain.Booking{f.booking}, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, _ int64, reason string) error {
	f.cancelled = true
	f.reason = reason
	return nil
}

type fakePropertyRepo struct {
	property *domain.Property
	err      error
}

func (f *fakePropertyRepo) GetByID(_ context.Context, _ int64) (*domain.Property, error) {
	return f.property, f.err
}

type fakeLogRepo struct {
	entries   []*domain.BookingLogEntry
	appendErr error
}

func (f *fakeLogRepo) Append(_ context.Context, entry *domain.BookingLogEntry) (*domain.BookingLogEntry, error) {
	if f.appendErr != nil {
		return nil, f.appendErr
	}
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeLogRepo) GetByBookingID(_ context.Context, _ int64) ([]*domain.BookingLogEntry, error) {
	return f.entries, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:            5,
		PropertyID:    1,
		UserID:        7,
		Status:        domain.StatusConfirmed,
		PaymentStatus: domain.PaymentDPPending,
		CheckIn:       time.Date(2026, 7, 13, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2026, 7, 16, 0, 0, 0, 0, time.UTC),
		TotalAmount:   1600000,
	}
}

func newTestService(booking *domain.Booking) (*Service, *fakeBookingRepo, *fakeLogRepo) {
	repo := &fakeBookingRepo{booking: booking}
	logRepo := &fakeLogRepo{}
	svc := NewService(
		repo,
		&fakePropertyRepo{property: &domain.Property{ID: 1, IsActive: true}},
		logRepo,
		fixedTimeProvider{now: time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)},
		nopLogger{},
	)
	return svc, repo, logRepo
}

func TestGetByID_AccessControl(t *testing.T) {
	svc, _, _ := newTestService(testBooking())

	t.Run("owner", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 5, 7, false)
		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.ID)
	})

	t.Run("staff", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 5, 99, true)
		assert.NoError(t, err)
	})

	t.Run("other user denied", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 5, 99, false)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestGetByID_NotFound(t *testing.T) {
	svc, repo, _ := newTestService(nil)
	repo.getErr = bookingRepo.ErrBookingNotFound

	_, err := svc.GetByID(context.Background(), 5, 7, false)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel(t *testing.T) {
	t.Run("owner cancels", func(t *testing.T) {
		svc, repo, logRepo := newTestService(testBooking())

		err := svc.Cancel(context.Background(), 5, &models.CancelBookingRequest{
			UserID:             7,
			CancellationReason: "change of plans",
		}, false)
		require.NoError(t, err)
		assert.True(t, repo.cancelled)
		assert.Equal(t, "change of plans", repo.reason)

		require.Len(t, logRepo.entries, 1)
		assert.Equal(t, domain.EventBookingCancelled, logRepo.entries[0].Event)
	})

	t.Run("staff cancels foreign booking", func(t *testing.T) {
		svc, repo, _ := newTestService(testBooking())

		err := svc.Cancel(context.Background(), 5, &models.CancelBookingRequest{
			UserID:             99,
			CancellationReason: "double booking",
		}, true)
		require.NoError(t, err)
		assert.True(t, repo.cancelled)
	})

	t.Run("other user denied", func(t *testing.T) {
		svc, repo, _ := newTestService(testBooking())

		err := svc.Cancel(context.Background(), 5, &models.CancelBookingRequest{
			UserID:             99,
			CancellationReason: "not mine",
		}, false)
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.False(t, repo.cancelled)
	})

	t.Run("checked in cannot be cancelled", func(t *testing.T) {
		booking := testBooking()
		booking.Status = domain.StatusCheckedIn
		svc, repo, _ := newTestService(booking)

		err := svc.Cancel(context.Background(), 5, &models.CancelBookingRequest{
			UserID:             7,
			CancellationReason: "too late",
		}, false)
		assert.ErrorIs(t, err, ErrCannotCancel)
		assert.False(t, repo.cancelled)
	})

	t.Run("log failure does not undo cancellation", func(t *testing.T) {
		svc, repo, logRepo := newTestService(testBooking())
		logRepo.appendErr = errors.New("log table unavailable")

		err := svc.Cancel(context.Background(), 5, &models.CancelBookingRequest{
			UserID:             7,
			CancellationReason: "change of plans",
		}, false)
		assert.NoError(t, err)
		assert.True(t, repo.cancelled)
	})
}
