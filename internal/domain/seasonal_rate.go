package domain

import (
	"sort"
	"time"
)

// RateType тип сезонного тарифа
type RateType string

const (
	// RateTypeFixed фиксированная стоимость ночи, заменяет базовую ставку объекта
	RateTypeFixed RateType = "fixed"
	// RateTypePercentage процентная надбавка к накопленной стоимости ночей
	RateTypePercentage RateType = "percentage"
	// RateTypeMultiplier множитель накопленной стоимости ночей
	RateTypeMultiplier RateType = "multiplier"
)

// ValidRateTypes список всех допустимых типов тарифа
var ValidRateTypes = []RateType{RateTypeFixed, RateTypePercentage, RateTypeMultiplier}

// SeasonalRate сезонный тариф объекта
// Диапазон дат тарифа включает обе границы (inclusive), в отличие от
// полуоткрытого диапазона проживания
type SeasonalRate struct {
	ID         int64
	PropertyID int64
	Name       string

	StartDate time.Time // Первый день действия (включительно)
	EndDate   time.Time // Последний день действия (включительно)

	RateType  RateType
	RateValue float64 // fixed: стоимость ночи в минимальных единицах; percentage: 0-100; multiplier: коэффициент

	MinStayNights        int
	AppliesToWeekendsOnly bool
	ApplicableDaysOfWeek  []int // Дни недели 0-6 (воскресенье = 0); пустой список = все дни
	Priority              int   // 0-100, больше = выше приоритет
	IsActive              bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CoversStay возвращает true, если период действия тарифа пересекается с проживанием
// Ночи проживания: [stay.Start, stay.End); период тарифа: [StartDate, EndDate]
func (r *SeasonalRate) CoversStay(stay DateRange) bool {
	lastNight := stay.End().AddDate(0, 0, -1)
	return !r.StartDate.After(lastNight) && !r.EndDate.Before(stay.Start())
}

// AppliesOnWeekdays возвращает true, если тариф применим к дням недели проживания
// Пустой список applicable_days_of_week означает применимость к любым дням
func (r *SeasonalRate) AppliesOnWeekdays(stayWeekdays map[time.Weekday]bool) bool {
	if len(r.ApplicableDaysOfWeek) == 0 {
		return true
	}
	for _, d := range r.ApplicableDaysOfWeek {
		if stayWeekdays[time.Weekday(d)] {
			return true
		}
	}
	return false
}

// SeasonalRateSet набор сезонных тарифов одного объекта
type SeasonalRateSet struct {
	rates []*SeasonalRate
}

// NewSeasonalRateSet создает набор тарифов
// Порядок тарифов на входе не важен: разрешение всегда выполняется
// по priority DESC, start_date ASC
func NewSeasonalRateSet(rates []*SeasonalRate) *SeasonalRateSet {
	sorted := append([]*SeasonalRate(nil), rates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority > sorted[j].Priority
		}
		return sorted[i].StartDate.Before(sorted[j].StartDate)
	})
	return &SeasonalRateSet{rates: sorted}
}

// FindApplicable возвращает единственный применимый тариф для проживания
// Совпавшие тарифы НЕ складываются: побеждает тариф с наибольшим priority,
// при равенстве - с более ранней start_date
// Возвращает nil, если ни один тариф не применим (базовая ставка + надбавка выходных)
func (s *SeasonalRateSet) FindApplicable(stay DateRange, isWeekendStay bool) *SeasonalRate {
	stayWeekdays := stay.NightWeekdays()

	for _, rate := range s.rates {
		if !rate.IsActive {
			continue
		}
		if !rate.CoversStay(stay) {
			continue
		}
		if rate.AppliesToWeekendsOnly && !isWeekendStay {
			continue
		}
		if !rate.AppliesOnWeekdays(stayWeekdays) {
			continue
		}
		return rate
	}

	return nil
}
