package record_payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akimovv/VRM-BookingService/internal/domain"
	bookingRepo "github.com/akimovv/VRM-BookingService/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	booking       *domain.Booking
	err           error
	updatedStatus *domain.PaymentStatus
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	return f.booking, f.err
}

func (f *fakeBookingRepo) UpdatePaymentStatus(_ context.Context, _ int64, status domain.PaymentStatus) error {
	f.updatedStatus = &status
	return nil
}

type fakePaymentRepo struct {
	verifiedBefore domain.Money
	payments       []*domain.Payment
	nextID         int64
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *domain.Payment) (*domain.Payment, error) {
	created := *payment
	created.ID = f.nextID
	f.payments = append(f.payments, &created)
	return &created, nil
}

func (f *fakePaymentRepo) SumVerifiedByBooking(_ context.Context, _ int64) (domain.Money, error) {
	total := f.verifiedBefore
	for _, p := range f.payments {
		total += p.Amount
	}
	return total, nil
}

type fakeLogRepo struct {
	entries []*domain.BookingLogEntry
}

func (f *fakeLogRepo) Append(_ context.Context, entry *domain.BookingLogEntry) (*domain.BookingLogEntry, error) {
	f.entries = append(f.entries, entry)
	return entry, nil
}

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

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:            5,
		Status:        domain.StatusConfirmed,
		PaymentStatus: domain.PaymentDPPending,
		DPAmount:      480000,
		TotalAmount:   1600000,
	}
}

type env struct {
	bookingRepo *fakeBookingRepo
	paymentRepo *fakePaymentRepo
	logRepo     *fakeLogRepo
	uc          *UseCase
}

func newEnv(booking *domain.Booking, verifiedBefore domain.Money) *env {
	e := &env{
		bookingRepo: &fakeBookingRepo{booking: booking},
		paymentRepo: &fakePaymentRepo{verifiedBefore: verifiedBefore, nextID: 200},
		logRepo:     &fakeLogRepo{},
	}
	e.uc = NewUseCase(
		e.bookingRepo,
		e.paymentRepo,
		e.logRepo,
		fakeTxManager{},
		fixedTimeProvider{now: time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)},
		nopLogger{},
	)
	return e
}

func request(amount domain.Money) *Request {
	return &Request{
		BookingID: 5,
		ActorID:   9,
		Amount:    amount,
		Method:    "bank_transfer",
	}
}

func TestExecute_DepositReached(t *testing.T) {
	e := newEnv(confirmedBooking(), 0)

	resp, err := e.uc.Execute(context.Background(), request(480000))
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentDPReceived, resp.PaymentStatus)
	assert.Equal(t, domain.Money(480000), resp.VerifiedTotal)
	assert.True(t, resp.StatusChanged)

	require.NotNil(t, e.bookingRepo.updatedStatus)
	assert.Equal(t, domain.PaymentDPReceived, *e.bookingRepo.updatedStatus)

	// Смена статуса и сам платеж записаны в журнал
	require.Len(t, e.logRepo.entries, 2)
	assert.Equal(t, domain.EventPaymentStatusChange, e.logRepo.entries[0].Event)
	assert.Equal(t, domain.EventPaymentRecorded, e.logRepo.entries[1].Event)
}

func TestExecute_BelowDepositNoStatusChange(t *testing.T) {
	e := newEnv(confirmedBooking(), 0)

	resp, err := e.uc.Execute(context.Background(), request(100000))
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentDPPending, resp.PaymentStatus)
	assert.False(t, resp.StatusChanged)
	assert.Nil(t, e.bookingRepo.updatedStatus)

	// Без смены статуса журналируется только платеж
	require.Len(t, e.logRepo.entries, 1)
	assert.Equal(t, domain.EventPaymentRecorded, e.logRepo.entries[0].Event)
}

func TestExecute_FullyPaid(t *testing.T) {
	booking := confirmedBooking()
	booking.PaymentStatus = domain.PaymentDPReceived
	e := newEnv(booking, 480000)

	resp, err := e.uc.Execute(context.Background(), request(1120000))
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentFullyPaid, resp.PaymentStatus)
	assert.Equal(t, domain.Money(1600000), resp.VerifiedTotal)
	assert.True(t, resp.StatusChanged)
}

func TestExecute_PaymentNotAllowed(t *testing.T) {
	booking := confirmedBooking()
	booking.Status = domain.StatusCancelled
	e := newEnv(booking, 0)

	_, err := e.uc.Execute(context.Background(), request(480000))
	assert.ErrorIs(t, err, ErrPaymentNotAllowed)
	assert.Empty(t, e.paymentRepo.payments)
	assert.Empty(t, e.logRepo.entries)
}

func TestExecute_BookingNotFound(t *testing.T) {
	e := newEnv(nil, 0)
	e.bookingRepo.err = bookingRepo.ErrBookingNotFound

	_, err := e.uc.Execute(context.Background(), request(480000))
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_Validation(t *testing.T) {
	e := newEnv(confirmedBooking(), 0)

	t.Run("non-positive amount", func(t *testing.T) {
		_, err := e.uc.Execute(context.Background(), request(0))
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("unknown method", func(t *testing.T) {
		req := request(480000)
		req.Method = "crypto"
		_, err := e.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
