package calculate_rate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akimovv/VRM-BookingService/internal/domain"
	propertyRepo "github.com/akimovv/VRM-BookingService/internal/infra/storage/property"
)

// UseCase use case расчета стоимости проживания
// Расчет чистый и детерминированный: повторный вызов с теми же входными
// данными возвращает идентичную разбивку (используется preview-эндпоинтом)
type UseCase struct {
	propertyRepo PropertyRepository
	rateRepo     SeasonalRateRepository
	weekendDays  []time.Weekday
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	propertyRepo PropertyRepository,
	rateRepo SeasonalRateRepository,
	weekendDays []time.Weekday,
	logger Logger,
) *UseCase {
	return &UseCase{
		propertyRepo: propertyRepo,
		rateRepo:     rateRepo,
		weekendDays:  weekendDays,
		logger:       logger,
	}
}

// Execute выполняет use case расчета стоимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CalculateRate: property=%d, checkIn=%s, checkOut=%s, guests=%d",
		req.PropertyID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.GuestCount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CalculateRate: validation failed: %v", err)
		return nil, err
	}

	// 2. Строим диапазон проживания
	stay, err := domain.NewDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		uc.logger.Warn("CalculateRate: invalid date range: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}

	// 3. Получаем объект
	property, err := uc.propertyRepo.GetByID(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			uc.logger.Warn("CalculateRate: property id=%d not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("CalculateRate: failed to get property id=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	if !property.IsActive {
		uc.logger.Warn("CalculateRate: property id=%d is not active", req.PropertyID)
		return nil, ErrPropertyInactive
	}

	// 4. Получаем активные сезонные тарифы объекта
	rates, err := uc.rateRepo.GetActiveByProperty(ctx, req.PropertyID)
	if err != nil {
		uc.logger.Error("CalculateRate: failed to get seasonal rates for property id=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get seasonal rates: %v", ErrInternal, err)
	}

	// 5. Рассчитываем стоимость
	breakdown, err := domain.CalculateRate(property, domain.NewSeasonalRateSet(rates), stay, req.GuestCount, uc.weekendDays)
	if err != nil {
		uc.logger.Warn("CalculateRate: calculation failed for property id=%d: %v", req.PropertyID, err)
		return nil, mapCalculationError(err)
	}

	if breakdown.AppliedSeasonalRate != nil {
		uc.logger.Info("CalculateRate: property=%d, nights=%d, total=%d, seasonal rate=%q",
			req.PropertyID, breakdown.Nights, breakdown.TotalAmount, *breakdown.AppliedSeasonalRate)
	} else {
		uc.logger.Info("CalculateRate: property=%d, nights=%d, total=%d, no seasonal rate",
			req.PropertyID, breakdown.Nights, breakdown.TotalAmount)
	}

	return &Response{
		PropertyID:               req.PropertyID,
		CheckIn:                  stay.Start(),
		CheckOut:                 stay.End(),
		GuestCount:               req.GuestCount,
		Nights:                   breakdown.Nights,
		BaseAmount:               breakdown.BaseAmount,
		WeekendPremiumAmount:     breakdown.WeekendPremiumAmount,
		SeasonalAdjustmentAmount: breakdown.SeasonalAdjustmentAmount,
		ExtraBedAmount:           breakdown.ExtraBedAmount,
		CleaningFee:              breakdown.CleaningFee,
		TotalAmount:              breakdown.TotalAmount,
		AppliedSeasonalRate:      breakdown.AppliedSeasonalRate,
	}, nil
}

// mapCalculationError транслирует доменные ошибки расчета в ошибки usecase
// Текст исходной ошибки сохраняется: для минимального проживания он
// содержит требуемое количество ночей
func mapCalculationError(err error) error {
	switch {
	case errors.Is(err, domain.ErrZeroNightStay):
		return fmt.Errorf("%w: %v", ErrZeroNightStay, err)
	case errors.Is(err, domain.ErrInvalidGuestCount):
		return fmt.Errorf("%w: %v", ErrInvalidGuestCount, err)
	case errors.Is(err, domain.ErrMinimumStayNotMet):
		return fmt.Errorf("%w: %v", ErrMinimumStayNotMet, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
