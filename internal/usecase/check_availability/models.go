package check_availability

import "time"

// Request модель запроса на проверку доступности дат
type Request struct {
	PropertyID       int64     // ID объекта
	CheckIn          time.Time // Дата заезда (без времени)
	CheckOut         time.Time // Дата выезда (без времени)
	ExcludeBookingID *int64    // ID бронирования, игнорируемого при проверке (редактирование)
}

// Response модель ответа проверки доступности
type Response struct {
	PropertyID int64     // ID объекта
	CheckIn    time.Time // Дата заезда
	CheckOut   time.Time // Дата выезда
	Available  bool      // Свободен ли диапазон от пересечений
}
