package create_booking

import (
	"time"

	"github.com/akimovv/VRM-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	PropertyID   int64     // ID объекта
	UserID       int64     // ID гостя из заголовка X-User-ID
	CheckIn      time.Time // Дата заезда (без времени)
	CheckOut     time.Time // Дата выезда (без времени)
	GuestCount   int       // Количество гостей
	DPPercentage int       // Процент депозита: 30, 50, 70 или 100
	Confirmed    bool      // true, если бронирование подтверждено менеджером сразу
	Notes        *string   // Дополнительные пожелания гостя
}

// Response модель ответа с созданным бронированием и разбивкой стоимости
type Response struct {
	Booking *domain.Booking
}
