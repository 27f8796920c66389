package calculate_rate

import (
	"time"

	"github.com/akimovv/VRM-BookingService/internal/domain"
)

// Request модель запроса на расчет стоимости проживания
type Request struct {
	PropertyID int64     // ID объекта
	CheckIn    time.Time // Дата заезда (без времени)
	CheckOut   time.Time // Дата выезда (без времени)
	GuestCount int       // Количество гостей
}

// Response модель ответа с разбивкой стоимости
type Response struct {
	PropertyID int64     // ID объекта
	CheckIn    time.Time // Дата заезда
	CheckOut   time.Time // Дата выезда
	GuestCount int       // Количество гостей
	Nights     int       // Количество ночей

	// Разбивка стоимости в минимальных единицах валюты
	BaseAmount               domain.Money // Ночи по базовой (или fixed-сезонной) ставке
	WeekendPremiumAmount     domain.Money // Надбавка за ночи выходных
	SeasonalAdjustmentAmount domain.Money // Корректировка сезонного тарифа
	ExtraBedAmount           domain.Money // Дополнительные места
	CleaningFee              domain.Money // Сбор за уборку
	TotalAmount              domain.Money // Итого

	AppliedSeasonalRate *string // Название применённого тарифа, nil если не применялся
}
