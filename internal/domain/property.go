package domain

import "time"

// Property represents the rate-relevant subset of a rental property
type Property struct {
	ID   int64
	Name string

	BaseRate              Money // Стоимость ночи в базовый день
	WeekendPremiumPercent int   // Надбавка за ночь выходного дня, 0-100
	CleaningFee           Money // Фиксированный сбор за уборку на все проживание
	ExtraBedRate          Money // Стоимость дополнительного места за ночь

	Capacity    int // Вместимость без дополнительных мест
	CapacityMax int // Максимальная вместимость с дополнительными местами

	MinStayWeekday int // Минимальное проживание в будни
	MinStayWeekend int // Минимальное проживание с ночами выходных
	MinStayPeak    int // Минимальное проживание при действующем сезонном тарифе

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ExtraGuests возвращает количество гостей сверх базовой вместимости
func (p *Property) ExtraGuests(guestCount int) int {
	extra := guestCount - p.Capacity
	if extra < 0 {
		return 0
	}
	return extra
}

// MinStayFor возвращает минимальное количество ночей для проживания
// При действующем сезонном тарифе берется максимум из минимума тарифа и пикового минимума объекта
func (p *Property) MinStayFor(applied *SeasonalRate, isWeekendStay bool) int {
	if applied != nil {
		minStay := applied.MinStayNights
		if p.MinStayPeak > minStay {
			minStay = p.MinStayPeak
		}
		return minStay
	}
	if isWeekendStay {
		return p.MinStayWeekend
	}
	return p.MinStayWeekday
}
