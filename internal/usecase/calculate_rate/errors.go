package calculate_rate

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объект не найден
	ErrPropertyNotFound = errors.New("calculate_rate: property not found")

	// ErrPropertyInactive возвращается, когда объект не принимает бронирования
	ErrPropertyInactive = errors.New("calculate_rate: property is not active")

	// ErrInvalidRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidRange = errors.New("calculate_rate: invalid date range")

	// ErrZeroNightStay возвращается при проживании нулевой длительности
	ErrZeroNightStay = errors.New("calculate_rate: stay must be at least one night")

	// ErrInvalidGuestCount возвращается, когда количество гостей вне [1, capacityMax]
	ErrInvalidGuestCount = errors.New("calculate_rate: invalid guest count")

	// ErrMinimumStayNotMet возвращается, когда проживание короче минимального
	ErrMinimumStayNotMet = errors.New("calculate_rate: minimum stay not met")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("calculate_rate: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("calculate_rate: internal error")
)
