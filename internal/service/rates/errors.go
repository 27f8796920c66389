package rates

import "errors"

var (
	// ErrRateNotFound возвращается, когда сезонный тариф не найден
	ErrRateNotFound = errors.New("seasonal rate not found")

	// ErrPropertyNotFound возвращается, когда объект не найден
	ErrPropertyNotFound = errors.New("property not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
