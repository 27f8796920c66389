package domain

import "time"

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinGuestCount              = 1
	MinSeasonalRatePriority    = 0
	MaxSeasonalRatePriority    = 100
	MinSeasonalRateStayNights  = 1
	MaxNotesLength             = 500
	MaxCancellationReasonLength = 500
)

// AllowedDepositTiers допустимые значения процента депозита (DP)
var AllowedDepositTiers = []int{30, 50, 70, 100}

// DefaultWeekendDays дни недели, считающиеся выходными по умолчанию
// Ночи пятницы и субботы; переопределяется в конфигурации сервиса
var DefaultWeekendDays = []time.Weekday{time.Friday, time.Saturday}

// NonBlockingStatuses список статусов, не блокирующих доступность дат
// Используется при проверке пересечений бронирований
var NonBlockingStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}

// ValidBookingStatuses список всех допустимых статусов бронирования
var ValidBookingStatuses = []BookingStatus{
	StatusPendingVerification,
	StatusConfirmed,
	StatusCheckedIn,
	StatusCheckedOut,
	StatusCancelled,
	StatusNoShow,
}

// ValidPaymentStatuses список всех допустимых статусов оплаты
var ValidPaymentStatuses = []PaymentStatus{
	PaymentDPPending,
	PaymentDPReceived,
	PaymentFullyPaid,
	PaymentRefunded,
}

// paymentStatusRank порядок статусов оплаты для монотонного продвижения
// Статус никогда не откатывается назад (кроме явного refund вне этого компонента)
var paymentStatusRank = map[PaymentStatus]int{
	PaymentDPPending:  0,
	PaymentDPReceived: 1,
	PaymentFullyPaid:  2,
	PaymentRefunded:   3,
}
