package calculate_rate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akimovv/VRM-BookingService/internal/domain"
	propertyRepo "github.com/akimovv/VRM-BookingService/internal/infra/storage/property"
)

type fakePropertyRepo struct {
	property *domain.Property
	err      error
}

func (f *fakePropertyRepo) GetByID(_ context.Context, _ int64) (*domain.Property, error) {
	return f.property, f.err
}

type fakeRateRepo struct {
	rates []*domain.SeasonalRate
	err   error
}

func (f *fakeRateRepo) GetActiveByProperty(_ context.Context, _ int64) ([]*domain.SeasonalRate, error) {
	return f.rates, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var weekend = []time.Weekday{time.Friday, time.Saturday}

func activeProperty() *domain.Property {
	return &domain.Property{
		ID:                    1,
		BaseRate:              500000,
		WeekendPremiumPercent: 20,
		CleaningFee:           100000,
		ExtraBedRate:          75000,
		Capacity:              2,
		CapacityMax:           4,
		MinStayWeekday:        1,
		MinStayWeekend:        1,
		MinStayPeak:           1,
		IsActive:              true,
	}
}

func TestExecute_Success(t *testing.T) {
	uc := NewUseCase(
		&fakePropertyRepo{property: activeProperty()},
		&fakeRateRepo{},
		weekend,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		PropertyID: 1,
		CheckIn:    date(2026, 7, 13),
		CheckOut:   date(2026, 7, 16),
		GuestCount: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Nights)
	assert.Equal(t, domain.Money(1500000), resp.BaseAmount)
	assert.Equal(t, domain.Money(1600000), resp.TotalAmount)
	assert.Nil(t, resp.AppliedSeasonalRate)
}

func TestExecute_WithSeasonalRate(t *testing.T) {
	uc := NewUseCase(
		&fakePropertyRepo{property: activeProperty()},
		&fakeRateRepo{rates: []*domain.SeasonalRate{{
			ID: 1, Name: "High Season",
			StartDate: date(2026, 7, 1), EndDate: date(2026, 8, 31),
			RateType: domain.RateTypePercentage, RateValue: 10,
			MinStayNights: 1, Priority: 50, IsActive: true,
		}}},
		weekend,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		PropertyID: 1,
		CheckIn:    date(2026, 7, 13),
		CheckOut:   date(2026, 7, 16),
		GuestCount: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.Money(150000), resp.SeasonalAdjustmentAmount)
	require.NotNil(t, resp.AppliedSeasonalRate)
	assert.Equal(t, "High Season", *resp.AppliedSeasonalRate)
}

func TestExecute_PropertyNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakePropertyRepo{err: propertyRepo.ErrPropertyNotFound},
		&fakeRateRepo{},
		weekend,
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		PropertyID: 42,
		CheckIn:    date(2026, 7, 13),
		CheckOut:   date(2026, 7, 16),
		GuestCount: 2,
	})
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestExecute_PropertyInactive(t *testing.T) {
	property := activeProperty()
	property.IsActive = false

	uc := NewUseCase(&fakePropertyRepo{property: property}, &fakeRateRepo{}, weekend, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		PropertyID: 1,
		CheckIn:    date(2026, 7, 13),
		CheckOut:   date(2026, 7, 16),
		GuestCount: 2,
	})
	assert.ErrorIs(t, err, ErrPropertyInactive)
}

func TestExecute_DomainErrorsMapped(t *testing.T) {
	uc := NewUseCase(&fakePropertyRepo{property: activeProperty()}, &fakeRateRepo{}, weekend, nopLogger{})

	t.Run("invalid guest count", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			PropertyID: 1,
			CheckIn:    date(2026, 7, 13),
			CheckOut:   date(2026, 7, 16),
			GuestCount: 9,
		})
		assert.ErrorIs(t, err, ErrInvalidGuestCount)
	})

	t.Run("invalid range", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			PropertyID: 1,
			CheckIn:    date(2026, 7, 16),
			CheckOut:   date(2026, 7, 13),
			GuestCount: 2,
		})
		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}
