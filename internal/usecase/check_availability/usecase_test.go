package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akimovv/VRM-BookingService/internal/domain"
	propertyRepo "github.com/akimovv/VRM-BookingService/internal/infra/storage/property"
	"github.com/akimovv/VRM-BookingService/pkg/ptr"
)

type fakePropertyRepo struct {
	property *domain.Property
	err      error
}

func (f *fakePropertyRepo) GetByID(_ context.Context, _ int64) (*domain.Property, error) {
	return f.property, f.err
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByPropertyWithFilter(_ context.Context, _ domain.PropertyBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func booking(id int64, status domain.BookingStatus, checkIn, checkOut time.Time) *domain.Booking {
	return &domain.Booking{
		ID:       id,
		Status:   status,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}
}

func TestExecute_AvailableWhenNoBookings(t *testing.T) {
	uc := NewUseCase(
		&fakePropertyRepo{property: &domain.Property{ID: 1, IsActive: true}},
		&fakeBookingRepo{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		PropertyID: 1,
		CheckIn:    date(2026, 7, 10),
		CheckOut:   date(2026, 7, 13),
	})
	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_OverlappingBookingBlocks(t *testing.T) {
	uc := NewUseCase(
		&fakePropertyRepo{property: &domain.Property{ID: 1, IsActive: true}},
		&fakeBookingRepo{bookings: []*domain.Booking{
			booking(10, domain.StatusConfirmed, date(2026, 7, 12), date(2026, 7, 15)),
		}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		PropertyID: 1,
		CheckIn:    date(2026, 7, 10),
		CheckOut:   date(2026, 7, 13),
	})
	require.NoError(t, err)
	assert.False(t, resp.Available)
}

func TestExecute_SameDayTurnover(t *testing.T) {
	// Существующий выезд 13-го: заезд 13-го не пересекается
	uc := NewUseCase(
		&fakePropertyRepo{property: &domain.Property{ID: 1, IsActive: true}},
		&fakeBookingRepo{bookings: []*domain.Booking{
			booking(10, domain.StatusConfirmed, date(2026, 7, 10), date(2026, 7, 13)),
		}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		PropertyID: 1,
		CheckIn:    date(2026, 7, 13),
		CheckOut:   date(2026, 7, 16),
	})
	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	uc := NewUseCase(
		&fakePropertyRepo{property: &domain.Property{ID: 1, IsActive: true}},
		&fakeBookingRepo{bookings: []*domain.Booking{
			booking(10, domain.StatusCancelled, date(2026, 7, 10), date(2026, 7, 13)),
			booking(11, domain.StatusNoShow, date(2026, 7, 11), date(2026, 7, 14)),
		}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		PropertyID: 1,
		CheckIn:    date(2026, 7, 10),
		CheckOut:   date(2026, 7, 13),
	})
	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_ExcludeBookingID(t *testing.T) {
	// При редактировании бронирование не конфликтует само с собой
	uc := NewUseCase(
		&fakePropertyRepo{property: &domain.Property{ID: 1, IsActive: true}},
		&fakeBookingRepo{bookings: []*domain.Booking{
			booking(10, domain.StatusConfirmed, date(2026, 7, 10), date(2026, 7, 13)),
		}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		PropertyID:       1,
		CheckIn:          date(2026, 7, 11),
		CheckOut:         date(2026, 7, 14),
		ExcludeBookingID: ptr.Ptr(int64(10)),
	})
	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_PropertyNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakePropertyRepo{err: propertyRepo.ErrPropertyNotFound},
		&fakeBookingRepo{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		PropertyID: 42,
		CheckIn:    date(2026, 7, 10),
		CheckOut:   date(2026, 7, 13),
	})
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestExecute_InvalidRange(t *testing.T) {
	uc := NewUseCase(
		&fakePropertyRepo{property: &domain.Property{ID: 1, IsActive: true}},
		&fakeBookingRepo{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		PropertyID: 1,
		CheckIn:    date(2026, 7, 13),
		CheckOut:   date(2026, 7, 13),
	})
	assert.ErrorIs(t, err, ErrInvalidRange)
}
