package domain

import "time"

// BookingLogEvent тип события в журнале бронирования
type BookingLogEvent string

const (
	EventBookingCreated      BookingLogEvent = "booking_created"
	EventPaymentRecorded     BookingLogEvent = "payment_recorded"
	EventPaymentStatusChange BookingLogEvent = "payment_status_changed"
	EventBookingCancelled    BookingLogEvent = "booking_cancelled"
)

// BookingLogEntry запись append-only журнала событий бронирования
// Журнал пишется вызывающей стороной после успешного перехода состояния,
// расчетные компоненты сами ничего не логируют в него
type BookingLogEntry struct {
	ID        int64
	BookingID int64
	ActorID   int64
	Event     BookingLogEvent
	Details   *string

	CreatedAt time.Time
}
