package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPendingVerification BookingStatus = "pending_verification"
	StatusConfirmed           BookingStatus = "confirmed"
	StatusCheckedIn           BookingStatus = "checked_in"
	StatusCheckedOut          BookingStatus = "checked_out"
	StatusCancelled           BookingStatus = "cancelled"
	StatusNoShow              BookingStatus = "no_show"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentDPPending  PaymentStatus = "dp_pending"
	PaymentDPReceived PaymentStatus = "dp_received"
	PaymentFullyPaid  PaymentStatus = "fully_paid"
	PaymentRefunded   PaymentStatus = "refunded"
)

// Booking represents a property stay booking in the system
type Booking struct {
	ID         int64
	PropertyID int64
	UserID     int64
	GuestCount int
	CheckIn    time.Time
	CheckOut   time.Time

	// Разбивка стоимости (все суммы в минимальных единицах валюты)
	BaseAmount               Money
	WeekendPremiumAmount     Money
	SeasonalAdjustmentAmount Money
	ExtraBedAmount           Money
	CleaningFee              Money
	TotalAmount              Money
	AppliedSeasonalRate      *string

	// Разбивка на депозит и остаток
	DPPercentage    int
	DPAmount        Money
	RemainingAmount Money
	PaymentStatus   PaymentStatus

	Status BookingStatus

	// Denormalized guest data for history
	GuestName  *string
	GuestPhone *string
	GuestEmail *string
	Notes      *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DateRange возвращает диапазон проживания бронирования
func (b *Booking) DateRange() DateRange {
	r, _ := NewDateRange(b.CheckIn, b.CheckOut)
	return r
}

// IsBlocking returns true if the booking blocks the property's availability
// Отмененные и no-show бронирования не блокируют даты
func (b *Booking) IsBlocking() bool {
	return b.Status != StatusCancelled && b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPendingVerification || b.Status == StatusConfirmed
}

// CanAcceptPayment returns true if the booking can accept a verified payment
func (b *Booking) CanAcceptPayment() bool {
	return b.IsBlocking() && b.Status != StatusCheckedOut && b.PaymentStatus != PaymentRefunded
}

// PropertyBookingsFilter фильтр для получения бронирований объекта
type PropertyBookingsFilter struct {
	PropertyID      int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отмененные и no-show бронирования
}
