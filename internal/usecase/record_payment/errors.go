package record_payment

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("record_payment: booking not found")

	// ErrPaymentNotAllowed возвращается, когда бронирование не может принять платеж
	// (отменено, no-show, выезд состоялся или платеж был возвращен)
	ErrPaymentNotAllowed = errors.New("record_payment: booking cannot accept payments")

	// ErrInvalidAmount возвращается при неположительной сумме платежа
	ErrInvalidAmount = errors.New("record_payment: payment amount must be positive")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("record_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("record_payment: internal error")
)
