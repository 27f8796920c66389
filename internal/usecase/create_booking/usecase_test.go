package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akimovv/VRM-BookingService/internal/domain"
	"github.com/akimovv/VRM-BookingService/internal/integrations/guestservice"
)

type fakeBookingRepo struct {
	existing []*domain.Booking
	created  *domain.Booking
	nextID   int64
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	created := *booking
	created.ID = f.nextID
	f.created = &created
	return &created, nil
}

func (f *fakeBookingRepo) GetByPropertyWithFilter(_ context.Context, _ domain.PropertyBookingsFilter) ([]*domain.Booking, error) {
	return f.existing, nil
}

type fakePropertyRepo struct {
	property *domain.Property
	err      error
}

func (f *fakePropertyRepo) GetByID(_ context.Context, _ int64) (*domain.Property, error) {
	return f.property, f.err
}

type fakeRateRepo struct {
	rates []*domain.SeasonalRate
}

func (f *fakeRateRepo) GetActiveByProperty(_ context.Context, _ int64) ([]*domain.SeasonalRate, error) {
	return f.rates, nil
}

type fakeLogRepo struct {
	entries []*domain.BookingLogEntry
}

func (f *fakeLogRepo) Append(_ context.Context, entry *domain.BookingLogEntry) (*domain.BookingLogEntry, error) {
	f.entries = append(f.entries, entry)
	return entry, nil
}

type fakeGuestClient struct {
	guest *guestservice.Guest
	err   error
}

func (f *fakeGuestClient) GetGuestWithGracefulDegradation(_ context.Context, _ int64) (*guestservice.Guest, error) {
	return f.guest, f.err
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time { return p.now }

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

type env struct {
	bookingRepo *fakeBookingRepo
	logRepo     *fakeLogRepo
	guestClient *fakeGuestClient
	uc          *UseCase
}

func newEnv(property *domain.Property, existing []*domain.Booking) *env {
	e := &env{
		bookingRepo: &fakeBookingRepo{existing: existing, nextID: 100},
		logRepo:     &fakeLogRepo{},
		guestClient: &fakeGuestClient{guest: &guestservice.Guest{ID: 7, Name: "Wayan", Phone: "+62811", Email: "wayan@example.com"}},
	}
	e.uc = NewUseCase(
		e.bookingRepo,
		&fakePropertyRepo{property: property},
		&fakeRateRepo{},
		e.logRepo,
		e.guestClient,
		fakeTxManager{},
		fixedTimeProvider{now: date(2026, 6, 1)},
		weekend,
		nopLogger{},
	)
	return e
}

func validRequest() *Request {
	return &Request{
		PropertyID:   1,
		UserID:       7,
		CheckIn:      date(2026, 7, 13),
		CheckOut:     date(2026, 7, 16),
		GuestCount:   2,
		DPPercentage: 30,
	}
}

func TestExecute_CreatesBooking(t *testing.T) {
	e := newEnv(activeProperty(), nil)

	resp, err := e.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	b := resp.Booking
	assert.Equal(t, int64(100), b.ID)
	assert.Equal(t, domain.StatusPendingVerification, b.Status)
	assert.Equal(t, domain.PaymentDPPending, b.PaymentStatus)
	assert.Equal(t, domain.Money(1600000), b.TotalAmount)
	assert.Equal(t, domain.Money(480000), b.DPAmount)
	assert.Equal(t, domain.Money(1120000), b.RemainingAmount)

	// Данные гостя денормализованы в бронирование
	require.NotNil(t, b.GuestName)
	assert.Equal(t, "Wayan", *b.GuestName)

	// Создание записано в журнал
	require.Len(t, e.logRepo.entries, 1)
	assert.Equal(t, domain.EventBookingCreated, e.logRepo.entries[0].Event)
	assert.Equal(t, int64(100), e.logRepo.entries[0].BookingID)
	assert.Equal(t, date(2026, 6, 1), e.logRepo.entries[0].CreatedAt)
}

func TestExecute_ConfirmedStatus(t *testing.T) {
	e := newEnv(activeProperty(), nil)

	req := validRequest()
	req.Confirmed = true

	resp, err := e.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, resp.Booking.Status)
}

func TestExecute_PropertyUnavailable(t *testing.T) {
	e := newEnv(activeProperty(), []*domain.Booking{{
		ID: 55, Status: domain.StatusConfirmed,
		CheckIn: date(2026, 7, 14), CheckOut: date(2026, 7, 17),
	}})

	_, err := e.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPropertyUnavailable)
	assert.Nil(t, e.bookingRepo.created)
	assert.Empty(t, e.logRepo.entries)
}

func TestExecute_SameDayTurnoverAllowed(t *testing.T) {
	// Существующий выезд совпадает с новым заездом
	e := newEnv(activeProperty(), []*domain.Booking{{
		ID: 55, Status: domain.StatusConfirmed,
		CheckIn: date(2026, 7, 10), CheckOut: date(2026, 7, 13),
	}})

	_, err := e.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_InvalidDepositTier(t *testing.T) {
	e := newEnv(activeProperty(), nil)

	req := validRequest()
	req.DPPercentage = 40

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDepositTier)
}

func TestExecute_PropertyInactive(t *testing.T) {
	property := activeProperty()
	property.IsActive = false
	e := newEnv(property, nil)

	_, err := e.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPropertyInactive)
}

func TestExecute_GuestNotFound(t *testing.T) {
	e := newEnv(activeProperty(), nil)
	e.guestClient.guest = nil
	e.guestClient.err = guestservice.ErrGuestNotFound

	_, err := e.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrGuestNotFound)
}

func TestExecute_GuestServiceDegradation(t *testing.T) {
	// Недоступность GuestService не блокирует бронирование
	e := newEnv(activeProperty(), nil)
	e.guestClient.guest = nil
	e.guestClient.err = errors.New("guest service: connection refused")

	resp, err := e.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Nil(t, resp.Booking.GuestName)
	assert.Nil(t, resp.Booking.GuestPhone)
	assert.Nil(t, resp.Booking.GuestEmail)
}

func TestExecute_MinimumStayNotMet(t *testing.T) {
	property := activeProperty()
	property.MinStayWeekday = 5
	e := newEnv(property, nil)

	_, err := e.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrMinimumStayNotMet)
}
