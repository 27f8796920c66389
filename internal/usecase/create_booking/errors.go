package create_booking

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объект не найден
	ErrPropertyNotFound = errors.New("create_booking: property not found")

	// ErrPropertyInactive возвращается, когда объект не принимает бронирования
	ErrPropertyInactive = errors.New("create_booking: property is not active")

	// ErrGuestNotFound возвращается, когда профиль гостя не найден
	ErrGuestNotFound = errors.New("create_booking: guest profile not found")

	// ErrInvalidRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidRange = errors.New("create_booking: invalid date range")

	// ErrZeroNightStay возвращается при проживании нулевой длительности
	ErrZeroNightStay = errors.New("create_booking: stay must be at least one night")

	// ErrInvalidGuestCount возвращается, когда количество гостей вне [1, capacityMax]
	ErrInvalidGuestCount = errors.New("create_booking: invalid guest count")

	// ErrMinimumStayNotMet возвращается, когда проживание короче минимального
	ErrMinimumStayNotMet = errors.New("create_booking: minimum stay not met")

	// ErrInvalidDepositTier возвращается, когда процент депозита не входит в допустимый набор
	ErrInvalidDepositTier = errors.New("create_booking: invalid deposit percentage tier")

	// ErrPropertyUnavailable возвращается, когда запрошенные даты пересекаются
	// с существующим блокирующим бронированием
	ErrPropertyUnavailable = errors.New("create_booking: property is not available for these dates")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
