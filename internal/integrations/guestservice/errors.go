package guestservice

import "errors"

var (
	// ErrGuestNotFound возвращается, когда гость не найден
	ErrGuestNotFound = errors.New("guest not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("guestservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("guestservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что GuestService недоступен и бронирование создается без
	// денормализованных данных гостя
	ErrServiceDegraded = errors.New("guestservice unavailable: graceful degradation applied")
)
