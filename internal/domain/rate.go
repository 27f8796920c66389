package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrZeroNightStay возвращается при проживании нулевой длительности
	ErrZeroNightStay = errors.New("domain: stay must be at least one night")

	// ErrInvalidGuestCount возвращается, когда количество гостей вне диапазона [1, capacityMax]
	ErrInvalidGuestCount = errors.New("domain: guest count is out of allowed range")

	// ErrMinimumStayNotMet возвращается, когда проживание короче минимально допустимого
	// Текст ошибки содержит требуемый минимум ночей
	ErrMinimumStayNotMet = errors.New("domain: minimum stay not met")
)

// RateBreakdown результат расчета стоимости проживания
// Значение не персистится: расчет чистый и детерминированный,
// повторный вызов с теми же входными данными дает идентичный результат
type RateBreakdown struct {
	Nights                   int
	BaseAmount               Money   // Ночи по базовой (или fixed-сезонной) ставке без надбавок
	WeekendPremiumAmount     Money   // Суммарная надбавка за ночи выходных
	SeasonalAdjustmentAmount Money   // Корректировка percentage/multiplier тарифа
	ExtraBedAmount           Money   // Дополнительные места за все ночи
	CleaningFee              Money
	TotalAmount              Money
	AppliedSeasonalRate      *string // Название применённого тарифа, nil если тариф не применялся
}

// CalculateRate рассчитывает полную стоимость проживания
//
// Алгоритм:
//  1. Валидация гостей и длительности
//  2. Разрешение сезонного тарифа (единственный победитель по приоритету)
//  3. Проверка минимального проживания
//  4. Накопление стоимости по ночам: fixed-тариф заменяет базовую ставку
//     ДО наслоения надбавки выходных; надбавка считается на каждую ночь отдельно
//  5. percentage/multiplier применяются к накопленной сумме ночей
//  6. Дополнительные места и сбор за уборку
//
// Функция чистая: без побочных эффектов, время и конфигурация выходных передаются параметрами
func CalculateRate(
	property *Property,
	rates *SeasonalRateSet,
	stay DateRange,
	guestCount int,
	weekendDays []time.Weekday,
) (*RateBreakdown, error) {
	if guestCount < MinGuestCount || guestCount > property.CapacityMax {
		return nil, fmt.Errorf("%w: guestCount=%d, allowed 1-%d", ErrInvalidGuestCount, guestCount, property.CapacityMax)
	}

	nights := stay.Nights()
	if nights == 0 {
		return nil, ErrZeroNightStay
	}

	weekendSet := make(map[time.Weekday]bool, len(weekendDays))
	for _, d := range weekendDays {
		weekendSet[d] = true
	}

	weekendNights := 0
	stay.EachNight(func(night time.Time) {
		if weekendSet[night.Weekday()] {
			weekendNights++
		}
	})
	isWeekendStay := weekendNights > 0

	applied := rates.FindApplicable(stay, isWeekendStay)

	if minStay := property.MinStayFor(applied, isWeekendStay); nights < minStay {
		return nil, fmt.Errorf("%w: minimum %d nights required, got %d", ErrMinimumStayNotMet, minStay, nights)
	}

	// fixed-тариф заменяет базовую ставку до наслоения надбавки выходных
	nightly := property.BaseRate
	if applied != nil && applied.RateType == RateTypeFixed {
		nightly = MoneyFromFloat(applied.RateValue)
	}

	baseAmount := nightly.MulNights(nights)

	// Надбавка выходных считается на каждую ночь, а не множителем на все проживание
	perNightPremium := RoundPercent(nightly, float64(property.WeekendPremiumPercent))
	weekendPremium := perNightPremium.MulNights(weekendNights)

	nightsAmount := baseAmount + weekendPremium

	var seasonalAdjustment Money
	if applied != nil {
		switch applied.RateType {
		case RateTypePercentage:
			seasonalAdjustment = RoundPercent(nightsAmount, applied.RateValue)
		case RateTypeMultiplier:
			seasonalAdjustment = RoundMultiply(nightsAmount, applied.RateValue) - nightsAmount
		case RateTypeFixed:
			// Уже учтен в базовой ставке
		}
	}

	extraBedAmount := property.ExtraBedRate.MulNights(nights) * Money(property.ExtraGuests(guestCount))

	total := nightsAmount + seasonalAdjustment + extraBedAmount + property.CleaningFee

	breakdown := &RateBreakdown{
		Nights:                   nights,
		BaseAmount:               baseAmount,
		WeekendPremiumAmount:     weekendPremium,
		SeasonalAdjustmentAmount: seasonalAdjustment,
		ExtraBedAmount:           extraBedAmount,
		CleaningFee:              property.CleaningFee,
		TotalAmount:              total,
	}
	if applied != nil {
		name := applied.Name
		breakdown.AppliedSeasonalRate = &name
	}

	return breakdown, nil
}
